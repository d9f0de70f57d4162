package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"script_dashboard/internal/textstat"
)

// Issue types emitted by the detector.
const (
	IssueUncertainty = "uncertainty"
	IssueFiller      = "filler"
	IssueCasual      = "casual"
	IssueJargon      = "jargon"
	IssueRepetition  = "repetition"
)

// Severity levels, ranked high > medium > low.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Warning flags a single tone issue in the script. Position is the
// zero-based index into the raw sentence split, or -1 for corpus-wide
// issues such as repetition.
type Warning struct {
	Type       string `json:"type"`
	Sentence   string `json:"sentence"`
	Suggestion string `json:"suggestion"`
	Severity   string `json:"severity"`
	Position   int    `json:"position"`
}

// rule matches one issue pattern against a lower-cased sentence.
// skipBefore handles the one case a plain regexp cannot: "like" is only
// filler when no "like a" comparison follows it in the same sentence.
type rule struct {
	re         *regexp.Regexp
	skipBefore *regexp.Regexp
	issueType  string
	severity   string
}

func (r rule) find(sentenceLower string) (string, bool) {
	if r.skipBefore == nil {
		m := r.re.FindString(sentenceLower)
		return m, m != ""
	}
	for _, loc := range r.re.FindAllStringIndex(sentenceLower, -1) {
		if !r.skipBefore.MatchString(sentenceLower[loc[1]:]) {
			return sentenceLower[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// issueRules is checked in order per sentence; a sentence can collect one
// warning per rule that matches.
var issueRules = []rule{
	{re: regexp.MustCompile(`\b(maybe|perhaps)\b`), issueType: IssueUncertainty, severity: SeverityHigh},
	{re: regexp.MustCompile(`\b(i think|i guess|i believe)\b`), issueType: IssueUncertainty, severity: SeverityMedium},
	{re: regexp.MustCompile(`\b(sort of|kind of|probably)\b`), issueType: IssueUncertainty, severity: SeverityMedium},
	{re: regexp.MustCompile(`\b(might|could be|seems like|appears to)\b`), issueType: IssueUncertainty, severity: SeverityLow},

	{re: regexp.MustCompile(`\b(um|uh)\b`), issueType: IssueFiller, severity: SeverityHigh},
	{re: regexp.MustCompile(`\blike\b`), skipBefore: regexp.MustCompile(`\blike\s+a\b`), issueType: IssueFiller, severity: SeverityMedium},
	{re: regexp.MustCompile(`\b(you know|basically|actually|literally)\b`), issueType: IssueFiller, severity: SeverityMedium},

	{re: regexp.MustCompile(`\b(gonna|wanna|gotta|kinda|shoulda|coulda)\b`), issueType: IssueCasual, severity: SeverityHigh},
	{re: regexp.MustCompile(`\b(yeah|yep|nope)\b`), issueType: IssueCasual, severity: SeverityHigh},
	{re: regexp.MustCompile(`\b(ok so|alright|cool)\b`), issueType: IssueCasual, severity: SeverityMedium},
	{re: regexp.MustCompile(`\b(stuff|thingy|whatever)\b`), issueType: IssueCasual, severity: SeverityMedium},

	{re: regexp.MustCompile(`\b(synergy|leverage|paradigm|holistic|ecosystem)\b`), issueType: IssueJargon, severity: SeverityLow},
	{re: regexp.MustCompile(`\b(ideate|align|circle back|deep dive)\b`), issueType: IssueJargon, severity: SeverityLow},
}

var repetitionExempt = map[string]struct{}{
	"click": {}, "button": {}, "select": {}, "enter": {},
}

var punctStripper = regexp.MustCompile(`[.,!?;:'"()-]`)

const maxWarningSentenceLen = 100

// DetectIssues scans every sentence against the issue rule tables, appends
// corpus-wide repetition warnings, and returns the result sorted by
// severity (high first) with detection order preserved within a severity.
func DetectIssues(script string) []Warning {
	warnings := []Warning{}

	for i, raw := range textstat.SplitSentences(script) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		lower := strings.ToLower(sentence)

		for _, r := range issueRules {
			matched, ok := r.find(lower)
			if !ok {
				continue
			}
			warnings = append(warnings, Warning{
				Type:       r.issueType,
				Sentence:   truncateSentence(sentence),
				Suggestion: SuggestionFor(r.issueType, matched),
				Severity:   r.severity,
				Position:   i,
			})
		}
	}

	warnings = append(warnings, repetitionWarnings(script)...)

	sort.SliceStable(warnings, func(a, b int) bool {
		return severityRank(warnings[a].Severity) < severityRank(warnings[b].Severity)
	})
	return warnings
}

// repetitionWarnings flags significant words (longer than 4 characters)
// used more than 5 times across the whole script. Common demo verbs are
// exempt. Warnings come out in first-occurrence order.
func repetitionWarnings(script string) []Warning {
	counts := map[string]int{}
	order := []string{}
	for _, w := range strings.Fields(strings.ToLower(script)) {
		w = punctStripper.ReplaceAllString(w, "")
		if len(w) <= 4 {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	var warnings []Warning
	for _, w := range order {
		if counts[w] <= 5 {
			continue
		}
		if _, exempt := repetitionExempt[w]; exempt {
			continue
		}
		warnings = append(warnings, Warning{
			Type:       IssueRepetition,
			Sentence:   fmt.Sprintf("Word '%s' used %d times", w, counts[w]),
			Suggestion: fmt.Sprintf("Consider using synonyms for '%s' to vary language", w),
			Severity:   SeverityLow,
			Position:   -1,
		})
	}
	return warnings
}

func severityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

func truncateSentence(s string) string {
	if len(s) > maxWarningSentenceLen {
		return s[:maxWarningSentenceLen] + "..."
	}
	return s
}
