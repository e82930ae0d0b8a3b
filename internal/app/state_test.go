package app

import (
	"testing"
	"time"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState(models.TimeRange7Days)
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.GetSnapshot() != nil {
		t.Error("Snapshot should be nil before the first load")
	}
	if s.GetActiveRange() != models.TimeRange7Days {
		t.Errorf("ActiveRange = %v, want 7d", s.GetActiveRange())
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	s.SetLoading("snapshot", true)
	if !s.Loading.Snapshot {
		t.Error("Snapshot loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("snapshot", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}
}

func TestState_Snapshot(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	s.SetFetchError("backend down")
	if s.GetFetchError() != "backend down" {
		t.Errorf("FetchError = %q", s.GetFetchError())
	}

	snap := &models.Snapshot{
		ViewModel:  models.AnalyticsViewModel{TotalCalls: 42},
		Range:      models.TimeRange30Days,
		Generation: 3,
	}
	s.SetSnapshot(snap)

	got := s.GetSnapshot()
	if got == nil || got.ViewModel.TotalCalls != 42 {
		t.Errorf("GetSnapshot = %+v", got)
	}
	// A landed snapshot clears the previous error.
	if s.GetFetchError() != "" {
		t.Errorf("FetchError = %q, want empty after success", s.GetFetchError())
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}
}

func TestState_ActiveRange(t *testing.T) {
	s := NewState(models.TimeRange1Day)

	s.SetActiveRange(models.TimeRange90Days)
	if s.GetActiveRange() != models.TimeRange90Days {
		t.Errorf("ActiveRange = %v, want 90d", s.GetActiveRange())
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("remaining notification = %s, want active", notifs[0].ID)
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if got := len(s.GetNotifications()); got > 10 {
		t.Errorf("notification count = %d, want at most 10", got)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState(models.TimeRange7Days)

	s.SetLoadingNotification("Loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 || notifs[0].ID != LoadingNotificationID {
		t.Fatalf("GetNotifications = %+v", notifs)
	}

	// Updating replaces the message, no duplicate entry.
	s.SetLoadingNotification("Still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 || notifs[0].Message != "Still loading..." {
		t.Fatalf("GetNotifications = %+v", notifs)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification should be removed")
	}
}
