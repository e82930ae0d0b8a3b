package models

// DailyCallSummary is one per-day record of the periodic summary.
type DailyCallSummary struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Answered  int    `json:"answered"`
	Failed    int    `json:"failed"`
}

// PeriodSummary is the ordered per-day sequence covering the selected window.
type PeriodSummary struct {
	Days []DailyCallSummary `json:"days"`
}
