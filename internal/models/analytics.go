// Package models defines data structures and domain types.
package models

// CallStatus is a backend-defined call outcome label.
type CallStatus string

// The closed set of call statuses the backend reports.
const (
	StatusInitiated CallStatus = "initiated"
	StatusAnswered  CallStatus = "answered"
	StatusCompleted CallStatus = "completed"
	StatusFailed    CallStatus = "failed"
)

// CallStatuses lists all known statuses in display order.
var CallStatuses = []CallStatus{StatusInitiated, StatusAnswered, StatusCompleted, StatusFailed}

// IsValid reports whether the status is one of the known labels.
func (s CallStatus) IsValid() bool {
	switch s {
	case StatusInitiated, StatusAnswered, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Sentiment is a backend-classified call tone label.
type Sentiment string

// The closed set of sentiments the backend reports.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists all known sentiments in display order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// IsValid reports whether the sentiment is one of the known labels.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// StatusBucket holds the aggregate count and duration for one call status.
type StatusBucket struct {
	Count                int   `json:"count"`
	TotalDurationSeconds int64 `json:"total_duration_seconds"`
}

// StatusBreakdown maps call statuses to their aggregate buckets.
type StatusBreakdown map[CallStatus]StatusBucket

// Bucket returns the bucket for a status, or a zero bucket when absent.
func (b StatusBreakdown) Bucket(s CallStatus) StatusBucket {
	return b[s]
}

// Count returns the call count for a status, defaulting to zero.
func (b StatusBreakdown) Count(s CallStatus) int {
	return b[s].Count
}

// TotalDuration sums total_duration_seconds over every bucket,
// including non-terminal and failed ones.
func (b StatusBreakdown) TotalDuration() int64 {
	var total int64
	for _, bucket := range b {
		total += bucket.TotalDurationSeconds
	}
	return total
}

// SentimentBreakdown maps sentiments to call counts.
type SentimentBreakdown map[Sentiment]int

// Count returns the count for a sentiment, defaulting to zero.
func (b SentimentBreakdown) Count(s Sentiment) int {
	return b[s]
}

// CallAnalytics is the raw aggregated call report supplied by the backend
// for a default reporting window. Immutable once received.
type CallAnalytics struct {
	TotalCalls         int                `json:"total_calls"`
	TodayCalls         int                `json:"today_calls"`
	StatusBreakdown    StatusBreakdown    `json:"status_breakdown"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
}
