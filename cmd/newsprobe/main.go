package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/analyze"
	"github.com/mjarosz/newsprobe/gemini"
	"github.com/mjarosz/newsprobe/goquery"
	"github.com/mjarosz/newsprobe/htmltomarkdown"
	nphttp "github.com/mjarosz/newsprobe/http"
	"github.com/mjarosz/newsprobe/readability"
	"github.com/mjarosz/newsprobe/rod"
	npslog "github.com/mjarosz/newsprobe/slog"
	"github.com/mjarosz/newsprobe/sqlite"
	"github.com/mjarosz/newsprobe/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService  newsprobe.ArticleService
	AnalysisService newsprobe.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsprobe"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsprobe --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSPROBE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Analyses = m.AnalysisService

	// Wire the analysis pipeline only for commands that fetch
	if cmd == "analyze" || cmd == "feed" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		fallbackName := cli.Analyze.Fallback
		static := cli.Analyze.Static
		concurrency := 0
		if cmd == "feed" {
			fallbackName = cli.Feed.Fallback
			static = cli.Feed.Static
			concurrency = cli.Feed.Concurrency
		}

		var fetcher, bypass newsprobe.Fetcher
		if static {
			fetcher = nphttp.NewFetcher()
			bypass = nphttp.NewFetcher(nphttp.WithUserAgent(bypassUserAgent))
		} else {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()

			// Paywall bypass profile: fresh browser, crawler user agent
			bypassBrowser, err := rod.NewFetcher(rod.WithUserAgent(bypassUserAgent))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start bypass browser: %w", err)
			}
			defer bypassBrowser.Close()

			fetcher, bypass = browser, bypassBrowser
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		var fallback newsprobe.MainTextExtractor
		if fallbackName == "readability" {
			fallback = readability.NewExtractor()
		} else {
			fallback = trafilatura.NewExtractor()
		}

		extractorOpts := []goquery.Option{goquery.WithFallback(fallback)}
		if cmd == "analyze" && cli.Analyze.Strict {
			extractorOpts = append(extractorOpts, goquery.WithStrict())
		}

		var extractor newsprobe.Extractor = goquery.NewExtractor(extractorOpts...)
		var analyzer newsprobe.Analyzer = gemini.NewAnalyzer(client)
		var feeds newsprobe.FeedService = nphttp.NewFeedService(nil)

		var logger *slog.Logger
		if os.Getenv("NEWSPROBE_DEBUG") != "" {
			logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			fetcher = rod.NewLoggingFetcher(fetcher, logger)
			extractor = npslog.NewLoggingExtractor(extractor, logger)
			analyzer = npslog.NewLoggingAnalyzer(analyzer, logger)
			feeds = npslog.NewLoggingFeedService(feeds, logger)
		}

		deps.Service = &analyze.Service{
			Fetcher:       fetcher,
			BypassFetcher: bypass,
			Extractor:     extractor,
			Analyzer:      analyzer,
			Converter:     htmltomarkdown.NewConverter(),
			Feeds:         feeds,
			Articles:      m.ArticleService,
			Analyses:      m.AnalysisService,
			Cache:         analyze.NewTTLCache(cacheTTL, cacheMaxSize),
			RateLimiter:   analyze.NewDomainLimiter(requestsPerSecond),
			TokenCounter:  tokenCounter,
			Logger:        logger,
			Concurrency:   concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// bypassUserAgent is the crawler profile used for the second fetch attempt
// after a paywall is detected. Many publishers serve full text to crawlers.
const bypassUserAgent = "Googlebot/2.1 (+http://www.google.com/bot.html)"

const (
	requestsPerSecond = 1.0
	cacheTTL          = 15 * time.Minute
	cacheMaxSize      = 256
)

func defaultDBPath() string {
	if path := os.Getenv("NEWSPROBE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsprobe.db"
	}
	dir := filepath.Join(home, ".newsprobe")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsprobe.db")
}
