// Package sentiment classifies the overall tone of a narration script,
// flags phrases that undermine it, and produces prioritized fixes. Like the
// quality scorer it is pure and deterministic; the timing-analysis argument
// is accepted for interface compatibility but no scoring branch reads it.
package sentiment

import (
	"math"
	"strings"

	"script_dashboard/internal/patterns"
	"script_dashboard/internal/textstat"
)

// Sentiment is the overall classification of a script.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// Limits applied to the final result.
const (
	maxWarnings    = 10
	maxSuggestions = 5
)

// Result is the complete tone report for one script.
type Result struct {
	OverallSentiment       Sentiment          `json:"overall_sentiment"`
	Confidence             float64            `json:"confidence"`
	EngagementScore        float64            `json:"engagement_score"`
	ProfessionalismScore   float64            `json:"professionalism_score"`
	ClarityScore           float64            `json:"clarity_score"`
	Warnings               []patterns.Warning `json:"warnings"`
	Statistics             map[string]int     `json:"statistics"`
	ImprovementSuggestions []string           `json:"improvement_suggestions"`
}

// Analyze runs the full tone analysis. timingAnalysis is reserved for
// future use and currently ignored.
func Analyze(script string, timingAnalysis map[string]interface{}) Result {
	_ = timingAnalysis

	if strings.TrimSpace(script) == "" {
		return Result{
			OverallSentiment:       Neutral,
			Confidence:             0.0,
			EngagementScore:        0.0,
			ProfessionalismScore:   0.0,
			ClarityScore:           0.0,
			Warnings:               []patterns.Warning{},
			Statistics:             map[string]int{"total_sentences": 0, "issues_found": 0},
			ImprovementSuggestions: []string{"Script is empty - provide content to analyze"},
		}
	}

	warnings := patterns.DetectIssues(script)

	engagement := EngagementScore(script)
	professionalism := ProfessionalismScore(script)
	clarity := ClarityScore(script)

	overall, confidence := overallSentiment(script)
	suggestions := improvementSuggestions(script, warnings, engagement, professionalism, clarity)

	statistics := map[string]int{
		"total_sentences":     len(textstat.Sentences(script)),
		"total_words":         textstat.WordCount(script),
		"issues_found":        len(warnings),
		"filler_words":        countByType(warnings, patterns.IssueFiller),
		"uncertainty_phrases": countByType(warnings, patterns.IssueUncertainty),
		"casual_language":     countByType(warnings, patterns.IssueCasual),
	}

	if len(warnings) > maxWarnings {
		warnings = warnings[:maxWarnings]
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return Result{
		OverallSentiment:       overall,
		Confidence:             confidence,
		EngagementScore:        round2(engagement),
		ProfessionalismScore:   round2(professionalism),
		ClarityScore:           round2(clarity),
		Warnings:               warnings,
		Statistics:             statistics,
		ImprovementSuggestions: suggestions,
	}
}

// overallSentiment classifies the script by comparing positive, negative,
// and neutral vocabulary hits. A category must double its opposite to win;
// otherwise the script is neutral.
func overallSentiment(script string) (Sentiment, float64) {
	scriptLower := strings.ToLower(script)

	positive := patterns.CountPresent(scriptLower, patterns.PositiveWords)
	negative := patterns.CountPresent(scriptLower, patterns.NegativeWords)
	neutral := patterns.CountPresent(scriptLower, patterns.NeutralWords)

	total := float64(positive + negative + neutral + 1)

	switch {
	case positive > negative*2:
		return Positive, round2(min(0.95, 0.6+float64(positive)/total*0.3))
	case negative > positive*2:
		return Negative, round2(min(0.95, 0.6+float64(negative)/total*0.3))
	default:
		return Neutral, round2(0.7 + float64(neutral)/total*0.2)
	}
}

func countByType(warnings []patterns.Warning, issueType string) int {
	n := 0
	for _, w := range warnings {
		if w.Type == issueType {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
