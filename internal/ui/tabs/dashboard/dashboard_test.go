package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/Kart8ik/Voice-AI-Platform/internal/app"
	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
)

func loadedState(snapshot *models.Snapshot) *app.State {
	state := app.NewState(models.TimeRange7Days)
	state.SetLoading("initial", false)
	if snapshot != nil {
		state.SetSnapshot(snapshot)
	}
	return state
}

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		ViewModel: models.AnalyticsViewModel{
			TotalCalls:     100,
			TodayCalls:     12,
			CompletedCalls: 70,
			AnsweredCalls:  10,
			FailedCalls:    20,
			TotalDuration:  8400,
			AvgDuration:    84,
			AnswerRate:     80,
			AvgCostPerCall: 0.084,
			StatusBreakdown: models.StatusBreakdown{
				models.StatusCompleted: {Count: 70, TotalDurationSeconds: 7000},
				models.StatusAnswered:  {Count: 10, TotalDurationSeconds: 1000},
				models.StatusFailed:    {Count: 20, TotalDurationSeconds: 400},
			},
		},
		Daily: []models.DailyPoint{
			{Date: "Mar 1", Total: 10, Completed: 7, Missed: 3},
			{Date: "Mar 2", Total: 12, Completed: 9, Missed: 3},
		},
		Sentiment: []models.SentimentSlice{
			{Sentiment: models.SentimentPositive, Count: 60},
			{Sentiment: models.SentimentNegative, Count: 40},
		},
		Range:      models.TimeRange7Days,
		FetchedAt:  time.Now(),
		Generation: 1,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(models.TimeRange7Days))
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	m := New(app.NewState(models.TimeRange7Days))
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_View_Loading(t *testing.T) {
	state := app.NewState(models.TimeRange7Days) // initial loading is on
	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "Loading analytics") {
		t.Errorf("loading view missing spinner label: %q", view)
	}
}

func TestModel_View_Error(t *testing.T) {
	state := loadedState(nil)
	state.SetFetchError("backend unreachable")
	m := New(state)
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "Could not load analytics") {
		t.Errorf("error view missing headline: %q", view)
	}
	if !strings.Contains(view, "backend unreachable") {
		t.Errorf("error view missing cause: %q", view)
	}
	if !strings.Contains(view, "Press r to retry") {
		t.Errorf("error view missing retry hint: %q", view)
	}
}

func TestModel_View_AnsweredCardNotDoubleCounted(t *testing.T) {
	snap := sampleSnapshot()
	// 8 completed + 5 answered; CompletedCalls already folds both in.
	snap.ViewModel.TotalCalls = 16
	snap.ViewModel.CompletedCalls = 13
	snap.ViewModel.AnsweredCalls = 5
	snap.ViewModel.FailedCalls = 3
	snap.ViewModel.StatusBreakdown = models.StatusBreakdown{
		models.StatusCompleted: {Count: 8, TotalDurationSeconds: 800},
		models.StatusAnswered:  {Count: 5, TotalDurationSeconds: 500},
		models.StatusFailed:    {Count: 3, TotalDurationSeconds: 60},
	}
	snap.Daily = nil
	m := New(loadedState(snap))
	m.SetSize(120, 40)

	view := m.View()
	if !strings.Contains(view, "13") {
		t.Errorf("Answered card should show 13: %q", view)
	}
	if strings.Contains(view, "18") {
		t.Errorf("Answered card must not add answered calls on top of 13: %q", view)
	}
}

func TestModel_View_ErrorAfterLoadedSnapshot(t *testing.T) {
	state := loadedState(sampleSnapshot())
	state.SetFetchError("analytics down")
	m := New(state)
	m.SetSize(100, 30)

	view := m.View()
	if !strings.Contains(view, "Could not load analytics") {
		t.Errorf("failed refetch should render the error state: %q", view)
	}
	if !strings.Contains(view, "analytics down") {
		t.Errorf("error view missing cause: %q", view)
	}
	if strings.Contains(view, "Call Analytics") {
		t.Errorf("stale dashboard must not render alongside the error state: %q", view)
	}
}

func TestModel_View_Loaded(t *testing.T) {
	m := New(loadedState(sampleSnapshot()))
	m.SetSize(120, 40)

	view := m.View()

	for _, want := range []string{
		"Call Analytics",
		"Total Calls",
		"100",
		"Answer Rate",
		"80.0%",
		"$0.084",
		"Calls per Day",
		"Status Breakdown",
		"Caller Sentiment",
		"completed",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_View_EmptyDaily(t *testing.T) {
	snap := sampleSnapshot()
	snap.Daily = nil
	m := New(loadedState(snap))
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "No call activity in this window") {
		t.Errorf("view missing empty daily placeholder: %q", view)
	}
}

func TestModel_SetSize(t *testing.T) {
	m := New(app.NewState(models.TimeRange7Days))
	m.SetSize(90, 30)
	if m.width != 90 || m.height != 30 {
		t.Errorf("size = %dx%d, want 90x30", m.width, m.height)
	}
	if m.viewport.Width != 90 {
		t.Errorf("viewport width = %d", m.viewport.Width)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0s"},
		{-3, "0s"},
		{45, "45s"},
		{84, "1m 24s"},
		{3661, "1h 1m 1s"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDailyCaption(t *testing.T) {
	if got := dailyCaption(nil); got != "" {
		t.Errorf("dailyCaption(nil) = %q", got)
	}
	one := []models.DailyPoint{{Date: "Mar 1"}}
	if got := dailyCaption(one); got != "Mar 1" {
		t.Errorf("dailyCaption(one) = %q", got)
	}
	two := []models.DailyPoint{{Date: "Mar 1"}, {Date: "Mar 7"}}
	if got := dailyCaption(two); got != "Mar 1 to Mar 7" {
		t.Errorf("dailyCaption(two) = %q", got)
	}
}
