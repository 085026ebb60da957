package main

import (
	"fmt"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
)

const progressURLWidth = 60

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	progress := func(event analyze.ProgressEvent) {
		switch event.Type {
		case analyze.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d articles\n", event.Total)
		case analyze.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, analyze.TruncateURL(event.URL, progressURLWidth))
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", analyze.TruncateURL(event.URL, progressURLWidth), event.Error)
		case analyze.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := deps.Service.AnalyzeFeed(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		for _, report := range result.Reports {
			path, err := writeReport(c.Out, c.JSON, report)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", analyze.TruncateURL(report.Article.SourceURL, progressURLWidth), newsprobe.ErrorMessage(err))
				continue
			}
			fmt.Fprintf(deps.Stdout, "  Wrote %s\n", path)
		}
	}

	var bytes, tokens int
	for _, report := range result.Reports {
		bytes += len(report.Article.Content)
		tokens += report.Tokens
	}

	fmt.Fprintf(deps.Stdout, "Analyzed %d articles (%s, %s; %d failed, %d duplicates skipped)\n",
		result.Analyzed, analyze.FormatBytes(bytes), analyze.FormatTokens(tokens),
		result.Failed, result.Skipped)

	return nil
}
