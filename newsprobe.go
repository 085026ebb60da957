// Package newsprobe provides a CLI-based news article analyzer.
// It fetches articles from URLs, strips paywall obstructions, extracts
// clean text and metadata, and analyzes the result for bias and factual
// claims using a language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, gemini/).
package newsprobe
