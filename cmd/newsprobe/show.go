package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	"github.com/mjarosz/newsprobe/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if newsprobe.ErrorCode(err) == newsprobe.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'newsprobe list' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		}
		return err
	}

	// An article without an analysis is still showable
	analysis, err := deps.Analyses.FindAnalysisByArticle(deps.Ctx, article.ID)
	if err != nil {
		if newsprobe.ErrorCode(err) != newsprobe.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
			return err
		}
		analysis = nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Article  *newsprobe.Article  `json:"article"`
			Analysis *newsprobe.Analysis `json:"analysis,omitempty"`
		}{article, analysis})
	}

	if c.Markdown {
		fmt.Fprint(deps.Stdout, fs.FormatReport(article, analysis))
		return nil
	}

	title := article.Title
	if title == "" {
		title = article.SourceURL
	}
	fmt.Fprintf(deps.Stdout, "%s\n", title)
	fmt.Fprintf(deps.Stdout, "  %s\n", article.SourceURL)
	if article.Author != "" {
		fmt.Fprintf(deps.Stdout, "  by %s", article.Author)
		if article.PublishedAt != "" {
			fmt.Fprintf(deps.Stdout, " (%s)", article.PublishedAt)
		}
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintf(deps.Stdout, "  %d words, fetched %s\n", article.WordCount, article.FetchedAt.Format("2006-01-02"))
	if article.HasPaywall {
		fmt.Fprintln(deps.Stdout, "  paywall detected")
	}

	if analysis == nil {
		fmt.Fprintln(deps.Stdout, "\nNo analysis stored for this article.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nAnalysis (%s, %s):\n", analysis.Model, analysis.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(deps.Stdout, "  bias %s, neutrality %s, balance %s\n",
		analyze.FormatScore(analysis.Bias.BiasScore),
		analyze.FormatScore(analysis.Bias.NeutralLanguageScore),
		analyze.FormatScore(analysis.Bias.PerspectiveBalance))
	if len(analysis.Bias.DetectedBiasTypes) > 0 {
		fmt.Fprintf(deps.Stdout, "  bias types: %s\n", strings.Join(analysis.Bias.DetectedBiasTypes, ", "))
	}
	if len(analysis.Bias.LoadedLanguage) > 0 {
		fmt.Fprintf(deps.Stdout, "  loaded language: %s\n", strings.Join(analysis.Bias.LoadedLanguage, ", "))
	}
	if analysis.Summary != "" {
		fmt.Fprintf(deps.Stdout, "\n  %s\n", analysis.Summary)
	}

	if len(analysis.Claims) > 0 {
		fmt.Fprintf(deps.Stdout, "\nClaims (%d):\n", len(analysis.Claims))
		for i, claim := range analysis.Claims {
			verify := ""
			if claim.RequiresVerification {
				verify = " [verify]"
			}
			fmt.Fprintf(deps.Stdout, "  %d. (%s)%s %s\n", i+1, claim.Type, verify, claim.Text)
		}
	}

	return nil
}
