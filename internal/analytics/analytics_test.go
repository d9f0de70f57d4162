package analytics

import (
	"testing"
	"time"

	"script_dashboard/internal/store"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func session(id string, daysAgo int, score int, sentiment string) store.Session {
	return store.Session{
		ID:              id,
		QualityScore:    score,
		Grade:           "B",
		Sentiment:       sentiment,
		DurationSeconds: 60,
		TotalEvents:     10,
		ActionBreakdown: map[string]int{"click": 3},
		CreatedAt:       now.AddDate(0, 0, -daysAgo),
	}
}

func TestBuildOverviewEmpty(t *testing.T) {
	o := BuildOverview(nil, now)
	if o.TotalSessions != 0 {
		t.Fatalf("total = %d, want 0", o.TotalSessions)
	}
	if o.AverageQualityScore != nil {
		t.Fatalf("average quality = %v, want nil", *o.AverageQualityScore)
	}
}

func TestBuildOverviewAggregates(t *testing.T) {
	sessions := []store.Session{
		session("a", 1, 80, "positive"),
		session("b", 10, 60, "neutral"),
		session("c", 40, 70, "neutral"),
	}
	o := BuildOverview(sessions, now)

	if o.TotalSessions != 3 {
		t.Errorf("total = %d, want 3", o.TotalSessions)
	}
	if o.TotalDurationMinutes != 3.0 {
		t.Errorf("duration minutes = %v, want 3.0", o.TotalDurationMinutes)
	}
	if o.AverageDurationSeconds != 60.0 {
		t.Errorf("avg duration = %v, want 60.0", o.AverageDurationSeconds)
	}
	if o.TotalDomEvents != 30 {
		t.Errorf("dom events = %d, want 30", o.TotalDomEvents)
	}
	if o.ActionBreakdown["click"] != 9 {
		t.Errorf("clicks = %d, want 9", o.ActionBreakdown["click"])
	}
	if o.AverageQualityScore == nil || *o.AverageQualityScore != 70.0 {
		t.Errorf("avg quality = %v, want 70.0", o.AverageQualityScore)
	}
	if o.SentimentDistribution["neutral"] != 2 {
		t.Errorf("neutral count = %d, want 2", o.SentimentDistribution["neutral"])
	}
	if o.SessionsLast7Days != 1 {
		t.Errorf("last 7 days = %d, want 1", o.SessionsLast7Days)
	}
	if o.SessionsLast30Days != 2 {
		t.Errorf("last 30 days = %d, want 2", o.SessionsLast30Days)
	}
}

func TestAverageReportedEvenWhenZero(t *testing.T) {
	// A scored session with a 0 score is still a real average, distinct
	// from "no scored sessions".
	sessions := []store.Session{
		{ID: "a", QualityScore: 0, Grade: "F", CreatedAt: now},
	}

	o := BuildOverview(sessions, now)
	if o.AverageQualityScore == nil || *o.AverageQualityScore != 0.0 {
		t.Fatalf("average quality = %v, want 0.0", o.AverageQualityScore)
	}

	trends := BuildQualityTrends(sessions)
	if trends.OverallAverage == nil || *trends.OverallAverage != 0.0 {
		t.Fatalf("overall average = %v, want 0.0", trends.OverallAverage)
	}
}

func TestQualityTrendsInsufficientData(t *testing.T) {
	trends := BuildQualityTrends(nil)
	if trends.Trend != TrendInsufficientData {
		t.Fatalf("trend = %q, want insufficient_data", trends.Trend)
	}
	if trends.OverallAverage != nil {
		t.Fatalf("overall average = %v, want nil", *trends.OverallAverage)
	}
}

func TestQualityTrendsImproving(t *testing.T) {
	sessions := []store.Session{
		session("a", 4, 50, "neutral"),
		session("b", 3, 55, "neutral"),
		session("c", 1, 80, "positive"),
		session("d", 0, 85, "positive"),
	}
	trends := BuildQualityTrends(sessions)

	if trends.TotalScoredSessions != 4 {
		t.Errorf("scored = %d, want 4", trends.TotalScoredSessions)
	}
	if len(trends.DailyAverages) != 4 {
		t.Fatalf("daily averages = %d, want 4", len(trends.DailyAverages))
	}
	if trends.Trend != TrendImproving {
		t.Errorf("trend = %q, want improving", trends.Trend)
	}
	if trends.BestDay == nil || trends.BestDay.AverageScore != 85.0 {
		t.Errorf("best day = %+v, want average 85.0", trends.BestDay)
	}
	// Dates must come out sorted ascending.
	for i := 1; i < len(trends.DailyAverages); i++ {
		if trends.DailyAverages[i-1].Date > trends.DailyAverages[i].Date {
			t.Fatalf("daily averages not sorted: %+v", trends.DailyAverages)
		}
	}
}

func TestQualityTrendsStable(t *testing.T) {
	sessions := []store.Session{
		session("a", 2, 70, "neutral"),
		session("b", 1, 72, "neutral"),
	}
	trends := BuildQualityTrends(sessions)
	if trends.Trend != TrendStable {
		t.Fatalf("trend = %q, want stable", trends.Trend)
	}
}
