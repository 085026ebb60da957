package newsprobe

import "context"

// TokenCounter counts tokens in text for a specific model.
// Used to budget article content before sending it to the analyzer.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
