package quality

import (
	"fmt"
	"strings"

	"script_dashboard/internal/textstat"
)

// feedback turns component scores into ordered strengths and improvement
// suggestions. Fixed threshold bands per component, plus two script-wide
// checks: overused "click" and run-on average sentence length.
func feedback(script string, clarity, engagement, professionalism, technical int) (strengths, improvements []string) {
	strengths = []string{}
	improvements = []string{}
	scriptLower := strings.ToLower(script)

	switch {
	case clarity >= 80:
		strengths = append(strengths, "Clear, easy-to-follow language")
	case clarity >= 60:
		improvements = append(improvements, "Consider shorter sentences (15-20 words ideal)")
	default:
		improvements = append(improvements, "Simplify sentence structure and use clearer vocabulary")
	}

	switch {
	case engagement >= 80:
		strengths = append(strengths, "Engaging with strong action verbs")
	case engagement >= 60:
		improvements = append(improvements, "Add more action verbs (click, select, configure)")
	default:
		improvements = append(improvements, "Make the script more dynamic with active language and specific examples")
	}

	switch {
	case professionalism >= 85:
		strengths = append(strengths, "Professional, polished tone")
	case professionalism >= 70:
		improvements = append(improvements, "Remove filler words (um, basically, like)")
	default:
		improvements = append(improvements, "Adopt a more formal tone; avoid casual language")
	}

	switch {
	case technical >= 80:
		strengths = append(strengths, "Accurate UI element references")
	case technical >= 60:
		improvements = append(improvements, "Reference specific UI elements by name")
	default:
		improvements = append(improvements, "Align script more closely with actual UI interactions")
	}

	if strings.Count(scriptLower, "click") > 5 {
		improvements = append(improvements, "Vary verb usage - replace some 'click' with 'select', 'choose', 'press'")
	}

	// Averages over the raw sentence split, trailing empty segment included.
	segments := len(textstat.SplitSentences(script))
	avgLen := float64(textstat.WordCount(script)) / float64(max(1, segments))
	if avgLen > 25 {
		improvements = append(improvements, fmt.Sprintf("Average sentence length is %.0f words - aim for under 20", avgLen))
	}

	return strengths, improvements
}
