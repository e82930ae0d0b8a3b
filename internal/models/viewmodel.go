package models

import "time"

// AnalyticsViewModel is the derived, display-ready aggregate. It is a pure
// function of the raw payloads and is fully replaced on every fetch cycle.
type AnalyticsViewModel struct {
	TotalCalls     int
	TodayCalls     int
	CompletedCalls int
	AnsweredCalls  int
	FailedCalls    int

	// TotalDuration is summed across every status bucket, in seconds.
	TotalDuration int64
	// AvgDuration is seconds per call, 0 when there are no calls.
	AvgDuration float64
	// AnswerRate is a percentage in [0, 100], 0 when there are no calls.
	AnswerRate float64
	// AvgCostPerCall is a cost-per-second heuristic, not billing data.
	AvgCostPerCall float64

	// Raw breakdowns kept for the breakdown panels.
	StatusBreakdown    StatusBreakdown
	SentimentBreakdown SentimentBreakdown
}

// DailyPoint is one chart point of the daily two-series chart.
type DailyPoint struct {
	// Date is a short-formatted label like "Mar 1".
	Date string
	// Total is the day's total call count.
	Total int
	// Completed folds completed + answered into one series value.
	Completed int
	// Missed carries the day's failed count.
	Missed int
}

// SentimentSlice is one non-zero bucket of the sentiment distribution.
type SentimentSlice struct {
	Sentiment Sentiment
	Count     int
}

// Snapshot is the complete result of one fetch cycle: the derived view model,
// chart series, and the (possibly empty) assistant roster. Generation orders
// cycles so a stale in-flight result can be discarded.
type Snapshot struct {
	ViewModel  AnalyticsViewModel
	Daily      []DailyPoint
	Sentiment  []SentimentSlice
	Assistants []Assistant
	Range      TimeRange
	FetchedAt  time.Time
	Generation uint64
}
