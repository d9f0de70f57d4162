package patterns

// suggestionTable maps (issue type, matched text) to a concrete fix. Every
// type carries a "default" entry used when the matched text has no tailored
// suggestion.
var suggestionTable = map[string]map[string]string{
	IssueUncertainty: {
		"maybe":   "Use confident language: 'You can' or 'This allows'",
		"perhaps": "Be direct: state the action clearly",
		"i think": "Remove uncertainty: describe the actual behavior",
		"i guess": "Be confident about the feature",
		"sort of": "Be specific about what it does",
		"kind of": "Use precise language",
		"default": "Use confident, declarative statements",
	},
	IssueFiller: {
		"um":        "Remove filler - just continue with the next word",
		"uh":        "Remove filler - just continue with the next word",
		"like":      "Remove or replace with specific description",
		"you know":  "Remove - the audience will understand from context",
		"basically": "Remove - get to the point directly",
		"actually":  "Remove unless emphasizing a contrast",
		"literally": "Remove unless describing exact behavior",
		"default":   "Remove filler words for cleaner delivery",
	},
	IssueCasual: {
		"gonna":   "Use 'going to' for professional tone",
		"wanna":   "Use 'want to' for professional tone",
		"yeah":    "Use 'yes' or rephrase affirmatively",
		"nope":    "Use 'no' or rephrase negatively",
		"cool":    "Use 'great', 'excellent', or 'perfect'",
		"stuff":   "Be specific about what you're referring to",
		"default": "Use more formal language",
	},
	IssueJargon: {
		"default": "Consider simpler alternatives for broader audience",
	},
	IssueRepetition: {
		"default": "Vary your word choice to keep the script engaging",
	},
}

// SuggestionFor returns the fix for an issue type and the exact matched
// text, falling back to the per-type default.
func SuggestionFor(issueType, matched string) string {
	table, ok := suggestionTable[issueType]
	if !ok {
		return "Review and revise"
	}
	if s, ok := table[matched]; ok {
		return s
	}
	return table["default"]
}
