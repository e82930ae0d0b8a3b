package metrics

import (
	"math"
	"testing"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
)

func TestBuildViewModel_ZeroCalls(t *testing.T) {
	vm := BuildViewModel(&models.CallAnalytics{
		TotalCalls:         0,
		StatusBreakdown:    models.StatusBreakdown{},
		SentimentBreakdown: models.SentimentBreakdown{},
	})

	// Every rate-derived figure must be exactly 0, never NaN or Inf.
	for name, v := range map[string]float64{
		"AvgDuration":    vm.AvgDuration,
		"AnswerRate":     vm.AnswerRate,
		"AvgCostPerCall": vm.AvgCostPerCall,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s is not finite: %v", name, v)
		}
	}
}

func TestBuildViewModel_CompletedCombinesTerminalSuccesses(t *testing.T) {
	vm := BuildViewModel(&models.CallAnalytics{
		TotalCalls: 20,
		StatusBreakdown: models.StatusBreakdown{
			models.StatusCompleted: {Count: 8, TotalDurationSeconds: 800},
			models.StatusAnswered:  {Count: 5, TotalDurationSeconds: 300},
			models.StatusInitiated: {Count: 4, TotalDurationSeconds: 20},
			models.StatusFailed:    {Count: 3, TotalDurationSeconds: 60},
		},
	})

	if vm.CompletedCalls != 13 {
		t.Errorf("CompletedCalls = %d, want completed+answered = 13", vm.CompletedCalls)
	}
	if vm.AnsweredCalls != 5 {
		t.Errorf("AnsweredCalls = %d, want 5", vm.AnsweredCalls)
	}
	if vm.FailedCalls != 3 {
		t.Errorf("FailedCalls = %d, want 3", vm.FailedCalls)
	}
	// Duration sums every bucket, failed and initiated included.
	if vm.TotalDuration != 1180 {
		t.Errorf("TotalDuration = %d, want 1180", vm.TotalDuration)
	}
}

func TestBuildViewModel_ReferenceFigures(t *testing.T) {
	vm := BuildViewModel(&models.CallAnalytics{
		TotalCalls: 10,
		StatusBreakdown: models.StatusBreakdown{
			models.StatusCompleted: {Count: 8, TotalDurationSeconds: 800},
			models.StatusFailed:    {Count: 2, TotalDurationSeconds: 40},
		},
	})

	if vm.AnswerRate != 80.0 {
		t.Errorf("AnswerRate = %v, want 80.0", vm.AnswerRate)
	}
	if vm.AvgDuration != 84.0 {
		t.Errorf("AvgDuration = %v, want 84.0", vm.AvgDuration)
	}
	if math.Abs(vm.AvgCostPerCall-0.084) > 1e-9 {
		t.Errorf("AvgCostPerCall = %v, want 0.084", vm.AvgCostPerCall)
	}
}

func TestBuildViewModel_MissingBucketsDefaultZero(t *testing.T) {
	vm := BuildViewModel(&models.CallAnalytics{
		TotalCalls: 5,
		StatusBreakdown: models.StatusBreakdown{
			models.StatusInitiated: {Count: 5, TotalDurationSeconds: 50},
		},
	})

	if vm.CompletedCalls != 0 {
		t.Errorf("CompletedCalls = %d, want 0", vm.CompletedCalls)
	}
	if vm.AnswerRate != 0 {
		t.Errorf("AnswerRate = %v, want 0", vm.AnswerRate)
	}
	if vm.TotalDuration != 50 {
		t.Errorf("TotalDuration = %d, want 50", vm.TotalDuration)
	}
}

func TestBuildDailySeries(t *testing.T) {
	summary := &models.PeriodSummary{
		Days: []models.DailyCallSummary{
			{Date: "2024-03-01", Total: 10, Completed: 6, Answered: 1, Failed: 3},
			{Date: "2024-03-02", Total: 4, Completed: 2, Answered: 2, Failed: 0},
		},
	}

	points := BuildDailySeries(summary)
	if len(points) != 2 {
		t.Fatalf("len(points) = %d, want 2", len(points))
	}

	first := points[0]
	if first.Date != "Mar 1" {
		t.Errorf("Date = %q, want %q", first.Date, "Mar 1")
	}
	if first.Completed != 7 || first.Missed != 3 || first.Total != 10 {
		t.Errorf("point = %+v, want completed 7, missed 3, total 10", first)
	}

	if points[1].Completed != 4 || points[1].Missed != 0 {
		t.Errorf("second point = %+v", points[1])
	}
}

func TestBuildDailySeries_Empty(t *testing.T) {
	if got := BuildDailySeries(nil); got != nil {
		t.Errorf("BuildDailySeries(nil) = %v, want nil", got)
	}
	if got := BuildDailySeries(&models.PeriodSummary{}); got != nil {
		t.Errorf("BuildDailySeries(empty) = %v, want nil", got)
	}
}

func TestBuildDailySeries_BadDatePassesThrough(t *testing.T) {
	points := BuildDailySeries(&models.PeriodSummary{
		Days: []models.DailyCallSummary{{Date: "not-a-date", Total: 1}},
	})
	if points[0].Date != "not-a-date" {
		t.Errorf("Date = %q, want pass-through", points[0].Date)
	}
}

func TestBuildSentimentSlices_DropsZeroBuckets(t *testing.T) {
	slices := BuildSentimentSlices(models.SentimentBreakdown{
		models.SentimentPositive: 6,
		models.SentimentNeutral:  0,
		models.SentimentNegative: 4,
	})

	if len(slices) != 2 {
		t.Fatalf("len(slices) = %d, want 2", len(slices))
	}
	for _, s := range slices {
		if s.Count == 0 {
			t.Errorf("zero-count bucket %s must be dropped", s.Sentiment)
		}
	}
	// Fixed display order: positive before negative.
	if slices[0].Sentiment != models.SentimentPositive || slices[1].Sentiment != models.SentimentNegative {
		t.Errorf("order = %v", slices)
	}
}

func TestBuildSentimentSlices_AllZero(t *testing.T) {
	if got := BuildSentimentSlices(models.SentimentBreakdown{}); got != nil {
		t.Errorf("BuildSentimentSlices(empty) = %v, want nil", got)
	}
}
