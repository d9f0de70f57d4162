package sentiment

import (
	"script_dashboard/internal/patterns"
	"script_dashboard/internal/textstat"
)

// improvementSuggestions orders fixes by priority: high-severity issue
// types first, then weak tone scores, then overall length advice. The
// caller truncates to the result limit.
func improvementSuggestions(script string, warnings []patterns.Warning, engagement, professionalism, clarity float64) []string {
	suggestions := []string{}

	highTypes := map[string]bool{}
	for _, w := range warnings {
		if w.Severity == patterns.SeverityHigh {
			highTypes[w.Type] = true
		}
	}
	if highTypes[patterns.IssueFiller] {
		suggestions = append(suggestions, "Remove filler words (um, uh, like) for cleaner delivery")
	}
	if highTypes[patterns.IssueCasual] {
		suggestions = append(suggestions, "Replace casual language with professional alternatives")
	}
	if highTypes[patterns.IssueUncertainty] {
		suggestions = append(suggestions, "Use confident, declarative statements")
	}

	if engagement < 0.6 {
		suggestions = append(suggestions, "Add more action verbs and enthusiasm markers")
	}
	if professionalism < 0.7 {
		suggestions = append(suggestions, "Review script for informal language")
	}
	if clarity < 0.6 {
		suggestions = append(suggestions, "Shorten sentences and simplify vocabulary")
	}

	wordCount := textstat.WordCount(script)
	if wordCount < 50 {
		suggestions = append(suggestions, "Consider adding more detail to fully explain the workflow")
	} else if wordCount > 500 {
		suggestions = append(suggestions, "Consider condensing to keep viewer attention")
	}

	return suggestions
}
