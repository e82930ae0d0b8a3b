package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Kart8ik/Voice-AI-Platform/internal/config"
	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/notify"
)

// fakeAPI stubs the backend surface per request.
type fakeAPI struct {
	calls      *models.CallAnalytics
	callsErr   error
	summary    *models.PeriodSummary
	summaryErr error
	roster     []models.Assistant
	rosterErr  error
}

func (f *fakeAPI) GetCalls(context.Context) (*models.CallAnalytics, error) {
	return f.calls, f.callsErr
}

func (f *fakeAPI) GetSummary(context.Context, int) (*models.PeriodSummary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeAPI) ListAssistants(context.Context) ([]models.Assistant, error) {
	return f.roster, f.rosterErr
}

func healthyAPI() *fakeAPI {
	return &fakeAPI{
		calls: &models.CallAnalytics{
			TotalCalls: 10,
			StatusBreakdown: models.StatusBreakdown{
				models.StatusCompleted: {Count: 8, TotalDurationSeconds: 800},
				models.StatusFailed:    {Count: 2, TotalDurationSeconds: 40},
			},
			SentimentBreakdown: models.SentimentBreakdown{
				models.SentimentPositive: 6,
				models.SentimentNegative: 4,
			},
		},
		summary: &models.PeriodSummary{
			Days: []models.DailyCallSummary{
				{Date: "2024-03-01", Total: 10, Completed: 6, Answered: 1, Failed: 3},
			},
		},
		roster: []models.Assistant{{ID: "a1", Name: "Support", Model: "gpt-4o"}},
	}
}

func newTestManager(t *testing.T, api AnalyticsAPI, notifier notify.Notifier) *Manager {
	t.Helper()
	mgr, err := NewManager(&config.Config{APIBaseURL: "http://backend.test"}, api, notifier)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func TestManager_Fetch(t *testing.T) {
	mgr := newTestManager(t, healthyAPI(), nil)

	snap, err := mgr.Fetch(context.Background(), models.TimeRange7Days)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if snap.ViewModel.AnswerRate != 80.0 {
		t.Errorf("AnswerRate = %v, want 80.0", snap.ViewModel.AnswerRate)
	}
	if len(snap.Daily) != 1 || snap.Daily[0].Completed != 7 {
		t.Errorf("Daily = %+v", snap.Daily)
	}
	if len(snap.Sentiment) != 2 {
		t.Errorf("Sentiment = %+v, want two non-zero slices", snap.Sentiment)
	}
	if len(snap.Assistants) != 1 {
		t.Errorf("Assistants = %+v", snap.Assistants)
	}
	if snap.Range != models.TimeRange7Days {
		t.Errorf("Range = %v", snap.Range)
	}
	if snap.Generation == 0 {
		t.Error("Generation must be assigned")
	}
}

func TestManager_Fetch_RosterFailureDegrades(t *testing.T) {
	api := healthyAPI()
	api.roster = nil
	api.rosterErr = errors.New("roster down")
	mgr := newTestManager(t, api, nil)

	snap, err := mgr.Fetch(context.Background(), models.TimeRange30Days)
	if err != nil {
		t.Fatalf("Fetch() must tolerate roster failure, got %v", err)
	}
	if len(snap.Assistants) != 0 {
		t.Errorf("Assistants = %+v, want empty roster", snap.Assistants)
	}
	// The rest of the snapshot must still populate fully.
	if snap.ViewModel.TotalCalls != 10 {
		t.Errorf("TotalCalls = %d", snap.ViewModel.TotalCalls)
	}
}

func TestManager_Fetch_RequiredFailuresAbort(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*fakeAPI)
	}{
		{"CallsFail", func(f *fakeAPI) { f.callsErr = errors.New("analytics down") }},
		{"SummaryFail", func(f *fakeAPI) { f.summaryErr = errors.New("summary down") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := healthyAPI()
			tt.mutate(api)
			mgr := newTestManager(t, api, nil)

			snap, err := mgr.Fetch(context.Background(), models.TimeRange7Days)
			if err == nil {
				t.Fatal("expected error")
			}
			if snap != nil {
				t.Errorf("no partial snapshot may be produced, got %+v", snap)
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("err = %T, want *FetchError", err)
			}
			if fetchErr.Generation == 0 {
				t.Error("failed cycle must carry its generation")
			}
		})
	}
}

func TestManager_GenerationOrdering(t *testing.T) {
	mgr := newTestManager(t, healthyAPI(), nil)

	first, err := mgr.Fetch(context.Background(), models.TimeRange7Days)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	second, err := mgr.Fetch(context.Background(), models.TimeRange30Days)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if second.Generation <= first.Generation {
		t.Errorf("generations must increase: %d then %d", first.Generation, second.Generation)
	}
	if !mgr.IsStale(first.Generation) {
		t.Error("first cycle must be stale after a newer one started")
	}
	if mgr.IsStale(second.Generation) {
		t.Error("latest cycle must not be stale")
	}
}

func TestManager_ExportNotifies(t *testing.T) {
	var gotTitle, gotMessage string
	recorder := notify.Func(func(title, message string) error {
		gotTitle = title
		gotMessage = message
		return nil
	})

	mgr := newTestManager(t, healthyAPI(), recorder)
	if err := mgr.Export(models.TimeRange90Days); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if gotTitle == "" || gotMessage == "" {
		t.Error("Export must raise a notification")
	}
}

func TestManager_SubscribeReceivesBroadcast(t *testing.T) {
	mgr := newTestManager(t, healthyAPI(), nil)

	ch := mgr.Subscribe()
	mgr.broadcast(ErrorEvent{Service: "config", Error: errors.New("bad env")})

	select {
	case event := <-ch:
		if _, ok := event.(ErrorEvent); !ok {
			t.Errorf("event = %T, want ErrorEvent", event)
		}
	default:
		t.Error("subscriber did not receive broadcast")
	}
}

func TestManager_CloseIdempotent(t *testing.T) {
	mgr := newTestManager(t, healthyAPI(), nil)
	if err := mgr.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
