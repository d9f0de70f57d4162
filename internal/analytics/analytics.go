// Package analytics aggregates stored session analyses into overview and
// trend reports. All functions are pure over the session slice they are
// given; the HTTP layer fetches sessions from the store and passes them in.
package analytics

import (
	"math"
	"sort"
	"time"

	"script_dashboard/internal/store"
)

// Overview summarizes every stored session.
type Overview struct {
	TotalSessions          int            `json:"total_sessions"`
	TotalDurationMinutes   float64        `json:"total_duration_minutes"`
	AverageDurationSeconds float64        `json:"average_session_duration_seconds"`
	TotalDomEvents         int            `json:"total_dom_events"`
	ActionBreakdown        map[string]int `json:"action_breakdown"`
	AverageQualityScore    *float64       `json:"average_quality_score"`
	SentimentDistribution  map[string]int `json:"sentiment_distribution"`
	SessionsLast7Days      int            `json:"sessions_last_7_days"`
	SessionsLast30Days     int            `json:"sessions_last_30_days"`
}

// DailyAverage is the mean quality score of one calendar day.
type DailyAverage struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
	SessionCount int     `json:"session_count"`
}

// QualityTrends reports how quality scores evolve over time.
type QualityTrends struct {
	DailyAverages       []DailyAverage `json:"daily_averages"`
	TotalScoredSessions int            `json:"total_scored_sessions"`
	Trend               string         `json:"trend"`
	OverallAverage      *float64       `json:"overall_average"`
	BestDay             *DailyAverage  `json:"best_day,omitempty"`
}

// Trend classifications.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// BuildOverview aggregates sessions relative to now.
func BuildOverview(sessions []store.Session, now time.Time) Overview {
	out := Overview{
		ActionBreakdown:       map[string]int{},
		SentimentDistribution: map[string]int{},
	}
	if len(sessions) == 0 {
		return out
	}

	totalDuration := 0.0
	totalQuality := 0
	scored := 0
	for _, s := range sessions {
		totalDuration += s.DurationSeconds
		out.TotalDomEvents += s.TotalEvents
		for action, count := range s.ActionBreakdown {
			out.ActionBreakdown[action] += count
		}
		if s.Grade != "" {
			totalQuality += s.QualityScore
			scored++
		}
		if s.Sentiment != "" {
			out.SentimentDistribution[s.Sentiment]++
		}
		if now.Sub(s.CreatedAt) <= 7*24*time.Hour {
			out.SessionsLast7Days++
		}
		if now.Sub(s.CreatedAt) <= 30*24*time.Hour {
			out.SessionsLast30Days++
		}
	}

	out.TotalSessions = len(sessions)
	out.TotalDurationMinutes = round2(totalDuration / 60)
	out.AverageDurationSeconds = round2(totalDuration / float64(len(sessions)))
	if scored > 0 {
		avg := round2(float64(totalQuality) / float64(scored))
		out.AverageQualityScore = &avg
	}
	return out
}

// BuildQualityTrends groups scored sessions by day and classifies whether
// recent days improved on older ones.
func BuildQualityTrends(sessions []store.Session) QualityTrends {
	daily := map[string][]int{}
	scored := 0
	totalScore := 0
	for _, s := range sessions {
		if s.Grade == "" || s.CreatedAt.IsZero() {
			continue
		}
		date := s.CreatedAt.UTC().Format("2006-01-02")
		daily[date] = append(daily[date], s.QualityScore)
		scored++
		totalScore += s.QualityScore
	}

	if scored == 0 {
		return QualityTrends{
			DailyAverages:       []DailyAverage{},
			TotalScoredSessions: 0,
			Trend:               TrendInsufficientData,
		}
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	averages := make([]DailyAverage, 0, len(dates))
	for _, d := range dates {
		scores := daily[d]
		sum := 0
		for _, v := range scores {
			sum += v
		}
		averages = append(averages, DailyAverage{
			Date:         d,
			AverageScore: round2(float64(sum) / float64(len(scores))),
			SessionCount: len(scores),
		})
	}

	overall := round2(float64(totalScore) / float64(scored))
	best := averages[0]
	for _, a := range averages[1:] {
		if a.AverageScore > best.AverageScore {
			best = a
		}
	}

	return QualityTrends{
		DailyAverages:       averages,
		TotalScoredSessions: scored,
		Trend:               classifyTrend(averages),
		OverallAverage:      &overall,
		BestDay:             &best,
	}
}

// classifyTrend compares the most recent days against the older ones; a
// swing beyond 5 points counts as a real change.
func classifyTrend(averages []DailyAverage) string {
	if len(averages) < 2 {
		return TrendInsufficientData
	}

	var recent, older []DailyAverage
	if len(averages) >= 6 {
		recent = averages[len(averages)-3:]
		older = averages[:len(averages)-3]
	} else {
		mid := len(averages) / 2
		recent = averages[mid:]
		older = averages[:mid]
	}

	diff := meanScore(recent) - meanScore(older)
	switch {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanScore(averages []DailyAverage) float64 {
	sum := 0.0
	for _, a := range averages {
		sum += a.AverageScore
	}
	return sum / float64(len(averages))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
