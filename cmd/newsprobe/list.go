package main

import (
	"fmt"

	"github.com/mjarosz/newsprobe"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsprobe.ArticleFilter{Limit: c.Limit}
	if c.Paywalled {
		paywalled := true
		filter.HasPaywall = &paywalled
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsprobe analyze' to add one.")
		return nil
	}

	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = a.SourceURL
		}
		marker := " "
		if a.HasPaywall {
			marker = "P"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %5dw  %s\n",
			a.ID, a.FetchedAt.Format("2006-01-02"), marker, a.WordCount, title)
	}

	return nil
}
