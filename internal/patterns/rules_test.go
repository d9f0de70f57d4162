package patterns

import (
	"strings"
	"testing"
)

func TestDetectIssuesFindsFillerCasualUncertainty(t *testing.T) {
	script := "Um, so like, basically we're gonna maybe click the thingy."
	warnings := DetectIssues(script)

	if len(warnings) < 3 {
		t.Fatalf("expected at least 3 warnings, got %d: %+v", len(warnings), warnings)
	}

	types := map[string]int{}
	for _, w := range warnings {
		types[w.Type]++
	}
	for _, want := range []string{IssueFiller, IssueCasual, IssueUncertainty} {
		if types[want] == 0 {
			t.Errorf("expected a %s warning, got %v", want, types)
		}
	}
}

func TestDetectIssuesSeverityOrdering(t *testing.T) {
	script := "This might work. Um, wait. It leverages synergy. Yeah, basically done."
	warnings := DetectIssues(script)

	rank := map[string]int{SeverityHigh: 0, SeverityMedium: 1, SeverityLow: 2}
	for i := 1; i < len(warnings); i++ {
		if rank[warnings[i-1].Severity] > rank[warnings[i].Severity] {
			t.Fatalf("warnings not sorted by severity at %d: %+v", i, warnings)
		}
	}
}

func TestDetectIssuesPositionTracksSentence(t *testing.T) {
	script := "Open the dashboard. Maybe click Save."
	warnings := DetectIssues(script)
	if len(warnings) != 1 {
		t.Fatalf("expected exactly 1 warning, got %d: %+v", len(warnings), warnings)
	}
	if warnings[0].Type != IssueUncertainty || warnings[0].Position != 1 {
		t.Fatalf("expected uncertainty at position 1, got %+v", warnings[0])
	}
}

func TestLikeComparisonIsNotFiller(t *testing.T) {
	// "like a" reads as a comparison, not filler, so the earlier bare "like"
	// is the one that should be flagged.
	warnings := DetectIssues("This works like, you see, like a charm")
	foundLike := false
	for _, w := range warnings {
		if w.Type == IssueFiller && w.Suggestion == SuggestionFor(IssueFiller, "like") {
			foundLike = true
		}
	}
	if !foundLike {
		t.Fatalf("expected the bare 'like' to be flagged as filler: %+v", warnings)
	}
}

func TestRepetitionWarningIsCorpusWide(t *testing.T) {
	sentence := "The widget loads. The widget spins. The widget stops. The widget hides. The widget grows. The widget shrinks."
	warnings := DetectIssues(sentence)

	var rep *Warning
	for i := range warnings {
		if warnings[i].Type == IssueRepetition {
			rep = &warnings[i]
			break
		}
	}
	if rep == nil {
		t.Fatalf("expected a repetition warning, got %+v", warnings)
	}
	if rep.Position != -1 {
		t.Errorf("repetition position = %d, want -1", rep.Position)
	}
	if !strings.Contains(rep.Sentence, "'widget' used 6 times") {
		t.Errorf("unexpected repetition message: %q", rep.Sentence)
	}
}

func TestRepetitionExemptsDemoVerbs(t *testing.T) {
	script := strings.Repeat("Click the button. ", 8)
	for _, w := range DetectIssues(script) {
		if w.Type == IssueRepetition {
			t.Fatalf("click/button should be exempt from repetition: %+v", w)
		}
	}
}

func TestWarningSentenceTruncation(t *testing.T) {
	long := "Maybe " + strings.Repeat("the process continues without interruption ", 5)
	warnings := DetectIssues(long)
	if len(warnings) == 0 {
		t.Fatal("expected a warning for the long uncertain sentence")
	}
	for _, w := range warnings {
		if w.Position >= 0 && len(w.Sentence) > maxWarningSentenceLen+3 {
			t.Fatalf("sentence not truncated: %d chars", len(w.Sentence))
		}
	}
}

func TestSuggestionLookupFallsBackToDefault(t *testing.T) {
	if got := SuggestionFor(IssueUncertainty, "might"); got != "Use confident, declarative statements" {
		t.Fatalf("unexpected default suggestion: %q", got)
	}
	if got := SuggestionFor(IssueFiller, "um"); got != "Remove filler - just continue with the next word" {
		t.Fatalf("unexpected tailored suggestion: %q", got)
	}
}

func TestCountFillerOccurrencesCountsEveryHit(t *testing.T) {
	if got := CountFillerOccurrences("um well um and um again"); got != 3 {
		t.Fatalf("CountFillerOccurrences = %d, want 3", got)
	}
}
