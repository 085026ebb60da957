package main

import (
	"fmt"

	"github.com/mjarosz/newsprobe"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsprobe.Errorf(newsprobe.EINVALID, "use --force to confirm deletion")
	}

	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if newsprobe.ErrorCode(err) == newsprobe.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'newsprobe list' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, article.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsprobe.ErrorMessage(err))
		return err
	}

	title := article.Title
	if title == "" {
		title = article.SourceURL
	}
	fmt.Fprintf(deps.Stdout, "Deleted article %q\n", title)
	return nil
}
