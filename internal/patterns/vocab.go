package patterns

import (
	"regexp"
	"strings"
)

// The heuristic vocabularies below are fixed data consumed by both scoring
// pipelines. They are never mutated at runtime; both the 0-100 quality scale
// and the 0.0-1.0 tone scale read the same tables so the two reports stay
// consistent about what counts as filler, casual language, and so on.

// ActionVerbs are the UI verbs a demo narration is expected to use.
var ActionVerbs = []string{
	"click", "select", "type", "enter", "navigate", "open",
	"create", "add", "configure", "set", "choose", "drag",
	"submit", "save", "upload", "download", "edit", "delete",
	"view", "search", "filter", "sort", "expand", "collapse",
}

// Enthusiasm words signal energy and momentum in the narration.
var Enthusiasm = []string{
	"now", "here", "easy", "simple", "powerful", "instantly",
	"quickly", "seamlessly", "efficiently", "directly",
}

// Transitions improve flow between steps.
var Transitions = []string{"first", "next", "then", "finally", "now", "after", "before"}

// Fillers are spoken-language artifacts that should not survive into a
// polished script. These are counted per occurrence, not just presence.
var Fillers = []string{
	"um", "uh", "like", "you know", "basically", "actually",
	"literally", "kinda", "sorta", "gonna", "wanna",
}

// Casual phrases read as unprofessional in product narration.
var Casual = []string{
	"yeah", "yep", "nope", "ok so", "alright so", "cool",
	"stuff", "thingy", "whatever",
}

// Uncertainty phrases undermine the authority of the narration.
var Uncertainty = []string{
	"maybe", "perhaps", "i think", "i guess", "might",
	"probably", "sort of", "kind of",
}

// Contractions draw a mild penalty in formal narration.
var Contractions = []string{"don't", "won't", "can't", "shouldn't", "couldn't"}

// Professional phrases earn a small bonus.
var Professional = []string{
	"please note", "ensure that", "proceed to", "configure the",
	"navigate to", "select the", "enter your",
}

// Sentiment vocabularies for the overall positive/neutral/negative call.
var (
	PositiveWords = []string{
		"easy", "simple", "powerful", "great", "excellent", "perfect",
		"seamless", "efficient", "intuitive", "helpful", "amazing",
		"successful", "complete", "achieve", "accomplish",
	}
	NegativeWords = []string{
		"difficult", "confusing", "problem", "error", "fail", "wrong",
		"unfortunately", "issue", "mistake", "complicated", "hard",
	}
	NeutralWords = []string{
		"click", "select", "enter", "navigate", "configure", "set",
	}
)

// fillerOccurrence holds a word-boundary matcher per filler so occurrences
// can be counted rather than just detected.
var fillerOccurrence = compileWordMatchers(Fillers)

func compileWordMatchers(words []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(words))
	for _, w := range words {
		out[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// CountPresent reports how many entries of vocab appear in the lower-cased
// script as substrings. Presence, not occurrence count.
func CountPresent(scriptLower string, vocab []string) int {
	n := 0
	for _, w := range vocab {
		if strings.Contains(scriptLower, w) {
			n++
		}
	}
	return n
}

// CountFillerOccurrences counts every word-boundary occurrence of each
// filler in the lower-cased script.
func CountFillerOccurrences(scriptLower string) int {
	total := 0
	for _, f := range Fillers {
		total += len(fillerOccurrence[f].FindAllString(scriptLower, -1))
	}
	return total
}
