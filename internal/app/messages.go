package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// SnapshotLoadedMsg carries the result of a completed fetch cycle.
type SnapshotLoadedMsg struct {
	Snapshot *models.Snapshot
}

// FetchFailedMsg signals that a fetch cycle failed. Generation lets the
// model discard failures from superseded cycles.
type FetchFailedMsg struct {
	Generation uint64
	Range      models.TimeRange
	Err        error
}

// RangeChangedMsg requests a fetch for a newly selected time window.
type RangeChangedMsg struct {
	Range models.TimeRange
}

// RefreshMsg requests a refresh of the current window.
type RefreshMsg struct{}

// ExportResultMsg contains the result of an export request.
type ExportResultMsg struct {
	Range models.TimeRange
	Err   error
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// DelayedMsg wraps a message to be sent after a delay.
type DelayedMsg struct {
	Delay time.Duration
	Msg   tea.Msg
}
