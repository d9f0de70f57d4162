package sentiment

import (
	"math"
	"regexp"
	"strings"

	"script_dashboard/internal/patterns"
	"script_dashboard/internal/textstat"
)

// The tone scores mirror the quality components on a 0.0-1.0 scale. The two
// scales share the vocabulary tables but weight them differently, and
// downstream consumers expect both shapes, so they are kept separate.

var (
	digitsPattern = regexp.MustCompile(`\d+`)
	quotedPattern = regexp.MustCompile(`["'][^"']+["']`)
)

// EngagementScore rates how actively the script drives the demo forward:
// action verb density, enthusiasm markers, transitions, concrete details.
func EngagementScore(script string) float64 {
	if script == "" {
		return 0.0
	}
	scriptLower := strings.ToLower(script)
	words := strings.Fields(scriptLower)
	if len(words) == 0 {
		return 0.0
	}

	score := 0.5

	actionCount := patterns.CountPresent(scriptLower, patterns.ActionVerbs)
	actionDensity := float64(actionCount) / float64(len(words))
	score += min(0.2, actionDensity*5)

	enthusiasmCount := patterns.CountPresent(scriptLower, patterns.Enthusiasm)
	score += min(0.15, float64(enthusiasmCount)*0.03)

	transitionCount := patterns.CountPresent(scriptLower, patterns.Transitions)
	score += min(0.1, float64(transitionCount)*0.02)

	numbers := len(digitsPattern.FindAllString(script, -1))
	quotes := len(quotedPattern.FindAllString(script, -1))
	score += min(0.05, float64(numbers+quotes)*0.01)

	return clamp01(score)
}

// ProfessionalismScore starts at 1.0 and deducts for fillers (per
// occurrence), casual phrases, and uncertainty.
func ProfessionalismScore(script string) float64 {
	if script == "" {
		return 0.0
	}
	scriptLower := strings.ToLower(script)

	score := 1.0
	score -= float64(patterns.CountFillerOccurrences(scriptLower)) * 0.03
	score -= float64(patterns.CountPresent(scriptLower, patterns.Casual)) * 0.03
	score -= float64(patterns.CountPresent(scriptLower, patterns.Uncertainty)) * 0.04

	return clamp01(score)
}

// ClarityScore blends sentence-length fit (15-20 words is ideal) with
// vocabulary simplicity.
func ClarityScore(script string) float64 {
	if script == "" {
		return 0.0
	}
	words := strings.Fields(script)
	sentences := textstat.Sentences(script)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.0
	}

	avgLength := float64(len(words)) / float64(len(sentences))
	var lengthScore float64
	switch {
	case avgLength >= 15 && avgLength <= 20:
		lengthScore = 1.0
	case avgLength >= 10 && avgLength <= 25:
		lengthScore = 0.8
	default:
		lengthScore = max(0.3, 1.0-math.Abs(avgLength-17.5)*0.02)
	}

	simpleWords := 0
	for _, w := range words {
		if len(w) <= 6 {
			simpleWords++
		}
	}
	vocabScore := 0.5 + float64(simpleWords)/float64(len(words))*0.5

	return min(1.0, (lengthScore+vocabScore)/2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
