// Package metrics derives the display-ready view model from raw backend
// payloads. Everything here is pure and deterministic: no I/O, no state.
package metrics

import (
	"time"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
)

// CostPerSecond is the heuristic rate used for the estimated cost per call.
// It is an estimate, not derived from billing data.
const CostPerSecond = 0.001

const dateLayout = "2006-01-02"

// BuildViewModel computes the derived aggregates from a raw call report.
// A report with zero calls yields zero-valued rates, never NaN or Inf.
func BuildViewModel(analytics *models.CallAnalytics) models.AnalyticsViewModel {
	status := analytics.StatusBreakdown

	// A call counts as complete only once it reached either terminal
	// success state; initiated and failed are excluded.
	completed := status.Count(models.StatusCompleted) + status.Count(models.StatusAnswered)

	// Time spent is summed across every bucket, failed and initiated included.
	totalDuration := status.TotalDuration()

	var avgDuration, answerRate float64
	if analytics.TotalCalls > 0 {
		avgDuration = float64(totalDuration) / float64(analytics.TotalCalls)
		answerRate = float64(completed) / float64(analytics.TotalCalls) * 100
	}

	return models.AnalyticsViewModel{
		TotalCalls:         analytics.TotalCalls,
		TodayCalls:         analytics.TodayCalls,
		CompletedCalls:     completed,
		AnsweredCalls:      status.Count(models.StatusAnswered),
		FailedCalls:        status.Count(models.StatusFailed),
		TotalDuration:      totalDuration,
		AvgDuration:        avgDuration,
		AnswerRate:         answerRate,
		AvgCostPerCall:     avgDuration * CostPerSecond,
		StatusBreakdown:    status,
		SentimentBreakdown: analytics.SentimentBreakdown,
	}
}

// BuildDailySeries converts per-day summary records into chart points, one
// per record in the same order. Completed and answered fold into a single
// "completed" series; failed becomes "missed".
func BuildDailySeries(summary *models.PeriodSummary) []models.DailyPoint {
	if summary == nil || len(summary.Days) == 0 {
		return nil
	}

	points := make([]models.DailyPoint, 0, len(summary.Days))
	for _, day := range summary.Days {
		points = append(points, models.DailyPoint{
			Date:      shortDate(day.Date),
			Total:     day.Total,
			Completed: day.Completed + day.Answered,
			Missed:    day.Failed,
		})
	}
	return points
}

// BuildSentimentSlices reads the fixed three-bucket distribution in display
// order, defaulting absent buckets to zero and then dropping zero-count
// buckets entirely.
func BuildSentimentSlices(breakdown models.SentimentBreakdown) []models.SentimentSlice {
	var slices []models.SentimentSlice
	for _, s := range models.Sentiments {
		count := breakdown.Count(s)
		if count == 0 {
			continue
		}
		slices = append(slices, models.SentimentSlice{Sentiment: s, Count: count})
	}
	return slices
}

// shortDate renders a YYYY-MM-DD date as a short month/day label.
// Unparseable dates are passed through untouched.
func shortDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
