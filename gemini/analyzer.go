// Package gemini implements article analysis using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mjarosz/newsprobe"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements newsprobe.Analyzer at compile time.
var _ newsprobe.Analyzer = (*Analyzer)(nil)

// Analyzer implements newsprobe.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze runs bias and claim analysis over cleaned article text.
func (a *Analyzer) Analyze(ctx context.Context, content string) (*newsprobe.Analysis, error) {
	if strings.TrimSpace(content) == "" {
		return nil, newsprobe.Errorf(newsprobe.EINVALID, "article content required")
	}

	prompt := BuildUserPrompt(content)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, newsprobe.Errorf(newsprobe.EINTERNAL, "gemini returned nil result")
	}

	analysis, err := ParseAnalysis(result.Text())
	if err != nil {
		return nil, err
	}
	analysis.Model = model
	analysis.CreatedAt = time.Now().UTC()
	return analysis, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: `You are a media analyst. Given the text of a news article, respond with a single JSON object and nothing else, using this shape:
{
  "bias": {
    "biasScore": 0.0,
    "neutralLanguageScore": 1.0,
    "perspectiveBalance": 1.0,
    "detectedBiasTypes": [],
    "loadedLanguage": [],
    "suggestions": []
  },
  "claims": [
    {"text": "", "type": "statistic|quote|event|definition", "confidence": 0.0, "requiresVerification": false}
  ],
  "summary": ""
}
Scores are between 0.0 and 1.0. biasScore of 0.0 means neutral reporting. Base every field only on the article text provided.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the article text.
func BuildUserPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	sb.WriteString(content)
	sb.WriteString("\n</article>\n\n")
	sb.WriteString("Analyze the article above for bias and factual claims.")
	return sb.String()
}

// analysisResponse mirrors the JSON shape requested from the model.
type analysisResponse struct {
	Bias    newsprobe.BiasAnalysis `json:"bias"`
	Claims  []newsprobe.Claim      `json:"claims"`
	Summary string                 `json:"summary"`
}

// ParseAnalysis decodes the model's JSON response into an Analysis.
// Markdown code fences around the JSON are tolerated since models
// occasionally add them despite instructions.
func ParseAnalysis(text string) (*newsprobe.Analysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var resp analysisResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, newsprobe.Errorf(newsprobe.EINTERNAL, "parsing analysis response: %v", err)
	}

	if err := validateScore("biasScore", resp.Bias.BiasScore); err != nil {
		return nil, err
	}
	if err := validateScore("neutralLanguageScore", resp.Bias.NeutralLanguageScore); err != nil {
		return nil, err
	}
	if err := validateScore("perspectiveBalance", resp.Bias.PerspectiveBalance); err != nil {
		return nil, err
	}

	return &newsprobe.Analysis{
		Bias:    resp.Bias,
		Claims:  resp.Claims,
		Summary: resp.Summary,
	}, nil
}

func validateScore(name string, v float64) error {
	if v < 0 || v > 1 {
		return newsprobe.Errorf(newsprobe.EINTERNAL, "analysis %s out of range: %g", name, v)
	}
	return nil
}
