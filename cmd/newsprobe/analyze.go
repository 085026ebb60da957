package main

import (
	"fmt"
	"strings"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	"github.com/mjarosz/newsprobe/fs"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	report, err := deps.Service.AnalyzeURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		return err
	}

	printReport(deps, report)

	if c.Out != "" {
		path, err := writeReport(c.Out, c.JSON, report)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}

	return nil
}

// printReport writes a human-readable analysis summary to stdout.
func printReport(deps *Dependencies, report *analyze.Report) {
	article := report.Article

	title := article.Title
	if title == "" {
		title = article.SourceURL
	}
	fmt.Fprintf(deps.Stdout, "%s\n", title)
	if article.Author != "" {
		fmt.Fprintf(deps.Stdout, "  by %s", article.Author)
		if article.PublishedAt != "" {
			fmt.Fprintf(deps.Stdout, " (%s)", article.PublishedAt)
		}
		fmt.Fprintln(deps.Stdout)
	}

	fmt.Fprintf(deps.Stdout, "  %d words, %s\n", article.WordCount, analyze.FormatTokens(report.Tokens))

	switch {
	case article.HasPaywall:
		fmt.Fprintln(deps.Stdout, "  paywall detected")
	case report.BypassUsed:
		fmt.Fprintln(deps.Stdout, "  paywall bypassed")
	}
	if report.Cached {
		fmt.Fprintln(deps.Stdout, "  (cached)")
	}

	if analysis := report.Analysis; analysis != nil {
		fmt.Fprintf(deps.Stdout, "  bias %s, neutrality %s, balance %s\n",
			analyze.FormatScore(analysis.Bias.BiasScore),
			analyze.FormatScore(analysis.Bias.NeutralLanguageScore),
			analyze.FormatScore(analysis.Bias.PerspectiveBalance))
		if len(analysis.Bias.LoadedLanguage) > 0 {
			fmt.Fprintf(deps.Stdout, "  loaded language: %s\n", strings.Join(analysis.Bias.LoadedLanguage, ", "))
		}
		fmt.Fprintf(deps.Stdout, "  %d claims extracted\n", len(analysis.Claims))
		if analysis.Summary != "" {
			fmt.Fprintf(deps.Stdout, "\n  %s\n", analysis.Summary)
		}
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(deps.Stderr, "  warning: %s\n", w)
	}
}

// writeReport exports a report under the given directory and returns the
// path of the written file.
func writeReport(dir string, asJSON bool, report *analyze.Report) (string, error) {
	w := fs.NewWriter(dir)
	if asJSON {
		return w.WriteJSON(report.Article, report.Analysis)
	}
	return w.WriteMarkdown(report.Article, report.Analysis)
}
