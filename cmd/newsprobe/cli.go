package main

import (
	"context"
	"io"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	"github.com/mjarosz/newsprobe/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles newsprobe.ArticleService
	Analyses newsprobe.AnalysisService
	Service  *analyze.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Fetch, extract and analyze a single article"`
	Feed    FeedCmd    `cmd:"" help:"Analyze every article in an RSS or Atom feed"`
	List    ListCmd    `cmd:"" help:"List stored articles"`
	Show    ShowCmd    `cmd:"" help:"Show a stored article and its analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an article and its analyses"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Out      string `short:"o" help:"Write a report file under this directory"`
	JSON     bool   `help:"Write the report as JSON instead of markdown"`
	Strict   bool   `help:"Fail when extracted content is too short"`
	Static   bool   `help:"Fetch with a plain HTTP client instead of a headless browser"`
	Fallback string `default:"trafilatura" enum:"trafilatura,readability" help:"Fallback extractor when no content selector matches"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL         string `arg:"" help:"Feed URL"`
	Out         string `short:"o" help:"Write report files under this directory"`
	JSON        bool   `help:"Write reports as JSON instead of markdown"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent analysis limit"`
	Static      bool   `help:"Fetch with a plain HTTP client instead of a headless browser"`
	Fallback    string `default:"trafilatura" enum:"trafilatura,readability" help:"Fallback extractor when no content selector matches"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Paywalled bool `help:"Show only paywalled articles"`
	Limit     int  `default:"20" help:"Maximum number of articles to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Article ID"`
	Markdown bool   `short:"m" help:"Print the full report as markdown"`
	JSON     bool   `help:"Print the article and analysis as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
