// Package quality grades a narration script on a 0-100 scale across four
// components (clarity, engagement, professionalism, technical accuracy) and
// derives a letter grade plus concrete feedback. Scoring is deterministic
// and pure: identical input always produces an identical Metrics value.
package quality

import (
	"math"
	"regexp"
	"strings"

	"script_dashboard/internal/models"
	"script_dashboard/internal/patterns"
	"script_dashboard/internal/textstat"
)

// Breakdown holds the four component scores, each clamped to [0,100].
type Breakdown struct {
	Clarity           int `json:"clarity"`
	Engagement        int `json:"engagement"`
	Professionalism   int `json:"professionalism"`
	TechnicalAccuracy int `json:"technical_accuracy"`
}

// Metrics is the complete quality assessment for one script. It is built
// once per Score call and never mutated afterwards.
type Metrics struct {
	OverallScore          int       `json:"overall_score"`
	Grade                 string    `json:"grade"`
	Breakdown             Breakdown `json:"breakdown"`
	Strengths             []string  `json:"strengths"`
	Improvements          []string  `json:"improvements"`
	WordCount             int       `json:"word_count"`
	SentenceCount         int       `json:"sentence_count"`
	AverageSentenceLength float64   `json:"average_sentence_length"`
	FleschReadingEase     float64   `json:"flesch_reading_ease"`
}

// Component weights for the overall score.
const (
	weightClarity         = 0.25
	weightEngagement      = 0.30
	weightProfessionalism = 0.25
	weightTechnical       = 0.20
)

var (
	digitsPattern       = regexp.MustCompile(`\d+`)
	doubleQuotedPattern = regexp.MustCompile(`"[^"]*"`)
	singleQuotedPattern = regexp.MustCompile(`'[^']*'`)
)

// Score computes quality metrics for a narration script. Timeline and
// session events are optional; without them technical accuracy falls back
// to a fixed default.
func Score(script string, timeline *models.TimelineContext, events []models.SessionEvent) Metrics {
	if strings.TrimSpace(script) == "" {
		return Metrics{
			OverallScore:          0,
			Grade:                 "F",
			Breakdown:             Breakdown{},
			Strengths:             []string{},
			Improvements:          []string{"Script is empty - provide content to analyze"},
			WordCount:             0,
			SentenceCount:         0,
			AverageSentenceLength: 0.0,
			FleschReadingEase:     0.0,
		}
	}

	wordCount := textstat.WordCount(script)
	sentenceCount := textstat.SentenceCount(script)
	avgSentenceLen := float64(wordCount) / float64(sentenceCount)

	clarity := clarityScore(script, avgSentenceLen)
	engagement := engagementScore(script)
	professionalism := professionalismScore(script)
	technical := technicalAccuracyScore(script, timeline, events)

	overall := int(float64(clarity)*weightClarity +
		float64(engagement)*weightEngagement +
		float64(professionalism)*weightProfessionalism +
		float64(technical)*weightTechnical)

	strengths, improvements := feedback(script, clarity, engagement, professionalism, technical)

	return Metrics{
		OverallScore: overall,
		Grade:        GradeFor(overall),
		Breakdown: Breakdown{
			Clarity:           clarity,
			Engagement:        engagement,
			Professionalism:   professionalism,
			TechnicalAccuracy: technical,
		},
		Strengths:             strengths,
		Improvements:          improvements,
		WordCount:             wordCount,
		SentenceCount:         sentenceCount,
		AverageSentenceLength: round1(avgSentenceLen),
		FleschReadingEase:     textstat.FleschReadingEase(script),
	}
}

// clarityScore starts at 100 and penalizes run-on or choppy sentences and
// dense vocabulary, with a small bonus for transition words.
func clarityScore(script string, avgSentenceLen float64) int {
	score := 100

	if avgSentenceLen > 25 {
		score -= min(30, int((avgSentenceLen-25)*3))
	} else if avgSentenceLen < 10 {
		score -= 10 // too choppy
	}

	words := strings.Fields(strings.ToLower(script))
	if len(words) > 0 {
		complexWords := 0
		for _, w := range words {
			if textstat.CountSyllables(w) >= 3 {
				complexWords++
			}
		}
		complexRatio := float64(complexWords) / float64(len(words))
		score -= min(20, int(complexRatio*100))
	}

	transitionCount := patterns.CountPresent(strings.ToLower(script), patterns.Transitions)
	score += min(10, transitionCount*2)

	return clamp100(score)
}

// engagementScore starts at 50 and rewards action verbs, concrete details
// (numbers and quoted UI labels), enthusiasm words, and varied sentence
// starters.
func engagementScore(script string) int {
	scriptLower := strings.ToLower(script)
	if len(strings.Fields(scriptLower)) == 0 {
		return 0
	}

	score := 50

	actionCount := patterns.CountPresent(scriptLower, patterns.ActionVerbs)
	score += min(25, actionCount*3)

	for _, p := range []*regexp.Regexp{digitsPattern, doubleQuotedPattern, singleQuotedPattern} {
		matches := len(p.FindAllString(script, -1))
		score += min(8, matches*2)
	}

	score += patterns.CountPresent(scriptLower, patterns.Enthusiasm) * 2

	starters := sentenceStarters(script)
	if len(starters) > 0 {
		unique := map[string]struct{}{}
		for _, s := range starters {
			unique[s] = struct{}{}
		}
		uniqueRatio := float64(len(unique)) / float64(len(starters))
		score += int(uniqueRatio * 10)
	}

	return clamp100(score)
}

// professionalismScore starts at 100 and penalizes fillers (per
// occurrence), casual language, uncertainty, and contractions, with a bonus
// for professional phrasing.
func professionalismScore(script string) int {
	scriptLower := strings.ToLower(script)
	score := 100

	score -= patterns.CountFillerOccurrences(scriptLower) * 5
	score -= patterns.CountPresent(scriptLower, patterns.Casual) * 4
	score -= patterns.CountPresent(scriptLower, patterns.Uncertainty) * 5
	score -= min(5, patterns.CountPresent(scriptLower, patterns.Contractions))
	score += patterns.CountPresent(scriptLower, patterns.Professional) * 2

	return clamp100(score)
}

// technicalAccuracyScore validates script references against recorded UI
// interactions. With no context at all it returns a fixed default of 75;
// supplied context starts from the 70 base even when it holds no events.
func technicalAccuracyScore(script string, timeline *models.TimelineContext, events []models.SessionEvent) int {
	if timeline == nil && len(events) == 0 {
		return 75
	}

	score := 70
	scriptLower := strings.ToLower(script)

	labels := models.UILabels(events)
	if len(labels) > 0 {
		referenced := 0
		for label := range labels {
			if label != "" && strings.Contains(scriptLower, label) {
				referenced++
			}
		}
		score += int(float64(referenced) / float64(len(labels)) * 25)
	}

	if timeline != nil {
		descriptions := 0
		matched := 0
		for _, ev := range timeline.Timeline {
			desc := strings.ToLower(ev.Description)
			if desc == "" {
				continue
			}
			descriptions++
			head := strings.Fields(desc)
			if len(head) > 3 {
				head = head[:3]
			}
			all := true
			for _, w := range head {
				if !strings.Contains(scriptLower, w) {
					all = false
					break
				}
			}
			if all {
				matched++
			}
		}
		if descriptions > 0 {
			score += int(float64(matched) / float64(descriptions) * 10)
		}
	}

	return clamp100(score)
}

// GradeFor maps an overall score to its letter grade with fixed inclusive
// thresholds.
func GradeFor(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 93:
		return "A"
	case score >= 90:
		return "A-"
	case score >= 87:
		return "B+"
	case score >= 83:
		return "B"
	case score >= 80:
		return "B-"
	case score >= 77:
		return "C+"
	case score >= 73:
		return "C"
	case score >= 70:
		return "C-"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func sentenceStarters(script string) []string {
	var starters []string
	for _, s := range textstat.Sentences(script) {
		fields := strings.Fields(s)
		if len(fields) > 0 {
			starters = append(starters, strings.ToLower(fields[0]))
		}
	}
	return starters
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
