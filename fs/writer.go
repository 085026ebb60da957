// Package fs exports analyzed articles to files.
package fs

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjarosz/newsprobe"
)

// URLToPath converts an article URL to a relative file path with the
// given extension.
// Example: https://example.com/news/budget → example.com/news/budget.md
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index
	if path == "" || path == "/" {
		return filepath.Join(u.Host, "index"+ext), nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index"+ext), nil
	}

	return filepath.Join(u.Host, path+ext), nil
}

// FormatReport formats an article and its analysis as markdown with YAML
// frontmatter. analysis may be nil.
func FormatReport(article *newsprobe.Article, analysis *newsprobe.Analysis) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	if article.Author != "" {
		b.WriteString("\nauthor: ")
		b.WriteString(article.Author)
	}
	if article.PublishedAt != "" {
		b.WriteString("\npublished: ")
		b.WriteString(article.PublishedAt)
	}
	b.WriteString("\nfetched: ")
	b.WriteString(article.FetchedAt.Format("2006-01-02"))
	if article.HasPaywall {
		b.WriteString("\npaywall: true")
	}
	if analysis != nil {
		fmt.Fprintf(&b, "\nbias_score: %.2f", analysis.Bias.BiasScore)
	}
	b.WriteString("\n---\n\n")

	if analysis != nil && analysis.Summary != "" {
		b.WriteString("> ")
		b.WriteString(analysis.Summary)
		b.WriteString("\n\n")
	}

	if article.ContentMarkdown != "" {
		b.WriteString(article.ContentMarkdown)
	} else {
		b.WriteString(article.Content)
	}
	b.WriteString("\n")
	return b.String()
}

// report is the JSON export shape.
type report struct {
	Article  *newsprobe.Article  `json:"article"`
	Analysis *newsprobe.Analysis `json:"analysis,omitempty"`
}

// Writer writes analyzed articles to a directory, mirroring the article
// URL structure.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteMarkdown writes the article and analysis as a markdown file.
// It returns the path of the written file.
func (w *Writer) WriteMarkdown(article *newsprobe.Article, analysis *newsprobe.Analysis) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(article.SourceURL, ".md")
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatReport(article, analysis)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// WriteJSON writes the article and analysis as a JSON file.
// It returns the path of the written file.
func (w *Writer) WriteJSON(article *newsprobe.Article, analysis *newsprobe.Analysis) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(article.SourceURL, ".json")
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report{Article: article, Analysis: analysis}, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, append(data, '\n'), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
