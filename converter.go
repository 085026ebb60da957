package newsprobe

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a located content region).
	Convert(html string) (string, error)
}
