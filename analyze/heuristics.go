package analyze

import (
	"strings"

	"github.com/mjarosz/newsprobe"
)

// loadedWords is an ordered vocabulary of emotionally charged words common
// in slanted news writing. Matching is case-insensitive on whole word
// tokens, so "slammed" matches but "grandslammed" does not.
var loadedWords = []string{
	"slammed",
	"blasted",
	"destroyed",
	"eviscerated",
	"outrageous",
	"shocking",
	"disgraceful",
	"shameful",
	"radical",
	"extremist",
	"regime",
	"disaster",
	"catastrophe",
	"chaos",
	"crisis",
	"scandal",
	"corrupt",
	"betrayal",
	"so-called",
	"notorious",
	"crooked",
	"scheme",
}

// DetectLoadedLanguage returns the loaded words found in content, in
// order of first appearance, without duplicates.
func DetectLoadedLanguage(content string) []string {
	tokens := strings.Fields(strings.ToLower(content))
	present := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		present[strings.Trim(tok, ".,!?;:\"'()[]")] = true
	}

	var found []string
	for _, w := range loadedWords {
		if present[w] {
			found = append(found, w)
		}
	}
	return found
}

// HeuristicBiasScore scores loaded-word density on a 0..1 scale.
// One loaded word per fifty words of text saturates the score.
func HeuristicBiasScore(loadedCount, wordCount int) float64 {
	if wordCount == 0 || loadedCount == 0 {
		return 0
	}
	score := float64(loadedCount*50) / float64(wordCount)
	if score > 1 {
		return 1
	}
	return score
}

// mergeHeuristics folds word-table findings into a model-produced
// analysis. The final bias score is the mean of the model score and the
// heuristic score, and heuristic findings extend the loaded language list.
func mergeHeuristics(analysis *newsprobe.Analysis, content string, wordCount int) {
	found := DetectLoadedLanguage(content)
	if len(found) == 0 {
		return
	}

	heuristic := HeuristicBiasScore(len(found), wordCount)
	analysis.Bias.BiasScore = (analysis.Bias.BiasScore + heuristic) / 2

	seen := make(map[string]bool, len(analysis.Bias.LoadedLanguage))
	for _, w := range analysis.Bias.LoadedLanguage {
		seen[strings.ToLower(w)] = true
	}
	for _, w := range found {
		if !seen[w] {
			analysis.Bias.LoadedLanguage = append(analysis.Bias.LoadedLanguage, w)
		}
	}
}
