package goquery_test

import (
	"strings"
	"testing"

	"github.com/mjarosz/newsprobe"
	"github.com/mjarosz/newsprobe/goquery"
	"github.com/mjarosz/newsprobe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsprobe.Extractor at compile time.
var _ newsprobe.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts an open article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h1>T</h1><p>One.</p><p>Two.</p><p>Three.</p><p>Four.</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(10))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.False(t, result.HasPaywall)
		assert.Contains(t, result.Content, "One. Two. Three. Four.")
		assert.Equal(t, len(strings.Fields(result.Content)), result.WordCount)
		assert.Equal(t, "T", result.Metadata.Title)
		assert.Empty(t, result.Warnings)
	})

	t.Run("is idempotent for identical input", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:title" content="Story"></head>
<body><article><p>Alpha beta gamma delta.</p><p>Two.</p><p>Three.</p><p>Four.</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(10))

		first, err := e.Extract(html, "https://example.com/a")
		require.NoError(t, err)
		second, err := e.Extract(html, "https://example.com/a")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("flags a paywalled teaser", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="paywall-message">Subscribe to continue</div>
<article><p>Preview paragraph only.</p></article>
</body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(10))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.True(t, result.HasPaywall)
		assert.Equal(t, newsprobe.ReasonSelector, result.PaywallReason)
	})

	t.Run("recovers malformed HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><h1>Title<p>First paragraph of a story that keeps going<p>Second paragraph<p>Third<p>Fourth`
		e := goquery.NewExtractor(goquery.WithMinContentLength(10))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Content)
	})

	t.Run("rejects empty input with EINVALID", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		_, err := e.Extract("", "https://example.com/a")

		assert.Equal(t, newsprobe.EINVALID, newsprobe.ErrorCode(err))
	})

	t.Run("strict mode rejects short content with ETOOSHORT", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>short text</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(100), goquery.WithStrict())

		_, err := e.Extract(html, "https://example.com/a")

		assert.Equal(t, newsprobe.ETOOSHORT, newsprobe.ErrorCode(err))
	})

	t.Run("non-strict mode downgrades short content to a warning", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>short text</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(100))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "short text", result.Content)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "below minimum")
	})

	t.Run("uses the readability fallback when no selector matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div><p>Paragraph one of the story.</p><p>Paragraph two.</p>
<p>Paragraph three.</p><p>Paragraph four.</p></div>
</body></html>`
		fallback := &mock.MainTextExtractor{
			ExtractMainTextFn: func(string) (string, error) {
				return "Paragraph one of the story.\nParagraph two.\nParagraph three.\nParagraph four.", nil
			},
		}
		e := goquery.NewExtractor(goquery.WithMinContentLength(10), goquery.WithFallback(fallback))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.False(t, result.HasPaywall)
		assert.Contains(t, result.Content, "Paragraph one of the story.")
	})

	t.Run("ignores the fallback when a selector matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>Real one.</p><p>Two.</p><p>Three.</p><p>Four.</p></article></body></html>`
		fallback := &mock.MainTextExtractor{
			ExtractMainTextFn: func(string) (string, error) {
				t.Fatal("fallback must not be called")
				return "", nil
			},
		}
		e := goquery.NewExtractor(goquery.WithMinContentLength(10), goquery.WithFallback(fallback))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Real one.")
	})

	t.Run("collects metadata alongside content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:title" content="Big Story">
<meta name="author" content="Jane Reporter">
<meta property="article:published_time" content="2024-03-01T09:30:00Z">
<link rel="canonical" href="https://news.example.com/big-story">
</head><body><article><p>One long paragraph.</p><p>Two.</p><p>Three.</p><p>Four.</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(10))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, newsprobe.Metadata{
			Title:        "Big Story",
			Author:       "Jane Reporter",
			Date:         "2024-03-01T09:30:00Z",
			CanonicalURL: "https://news.example.com/big-story",
		}, result.Metadata)
	})

	t.Run("renders region HTML for conversion", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>One.</p><p>Two.</p><p>Three.</p><p>Four.</p></article></body></html>`
		e := goquery.NewExtractor(goquery.WithMinContentLength(5))

		result, err := e.Extract(html, "https://example.com/a")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<article>")
		assert.Contains(t, result.ContentHTML, "<p>One.</p>")
	})
}
