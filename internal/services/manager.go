// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Kart8ik/Voice-AI-Platform/internal/config"
	"github.com/Kart8ik/Voice-AI-Platform/internal/logger"
	"github.com/Kart8ik/Voice-AI-Platform/internal/models"
	"github.com/Kart8ik/Voice-AI-Platform/internal/notify"
	"github.com/Kart8ik/Voice-AI-Platform/internal/services/metrics"
)

type (
	// ConfigReloadedEvent is emitted when the watched .env file changes
	// and the configuration was reloaded successfully.
	ConfigReloadedEvent struct {
		Config *config.Config
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ConfigReloadedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()          {}

// FetchError wraps a failed fetch cycle with the generation it was stamped
// with, so callers can tell a stale failure from a current one.
type FetchError struct {
	Generation uint64
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch cycle failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AnalyticsAPI is the backend surface the manager consumes. Satisfied by
// *api.Client; narrowed to an interface so fetch cycles are testable.
type AnalyticsAPI interface {
	GetCalls(ctx context.Context) (*models.CallAnalytics, error)
	GetSummary(ctx context.Context, days int) (*models.PeriodSummary, error)
	ListAssistants(ctx context.Context) ([]models.Assistant, error)
}

// Manager orchestrates fetch cycles and config watching.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	api         AnalyticsAPI
	notifier    notify.Notifier
	generation  atomic.Uint64
	watcher     *envWatcher
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
	closeOnce   sync.Once
}

// NewManager creates a new service manager. The notifier must not be nil;
// pass notify.Discard{} to silence notifications.
func NewManager(cfg *config.Config, apiClient AnalyticsAPI, notifier notify.Notifier) (*Manager, error) {
	if notifier == nil {
		notifier = notify.Discard{}
	}

	m := &Manager{
		cfg:       cfg,
		api:       apiClient,
		notifier:  notifier,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	if cfg.EnvFile != "" {
		watcher, err := newEnvWatcher(cfg.EnvFile, m.handleEnvChange)
		if err != nil {
			return nil, fmt.Errorf("failed to watch env file: %w", err)
		}
		m.watcher = watcher
	}

	return m, nil
}

// Config returns the current configuration.
func (m *Manager) Config() *config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// NextGeneration reserves the generation token for a new fetch cycle.
func (m *Manager) NextGeneration() uint64 {
	return m.generation.Add(1)
}

// IsStale reports whether a cycle's token has been superseded by a newer one.
func (m *Manager) IsStale(generation uint64) bool {
	return generation < m.generation.Load()
}

// Fetch runs one fetch cycle for the given window: call analytics, the
// per-day summary, and the assistant roster, all in parallel. The roster is
// supplementary; its failure degrades to an empty roster. Failure of either
// required request fails the whole cycle and no snapshot is produced.
func (m *Manager) Fetch(ctx context.Context, timeRange models.TimeRange) (*models.Snapshot, error) {
	generation := m.NextGeneration()

	var (
		analytics *models.CallAnalytics
		summary   *models.PeriodSummary
		roster    []models.Assistant
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		analytics, err = m.api.GetCalls(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		summary, err = m.api.GetSummary(gctx, timeRange.Days())
		return err
	})

	g.Go(func() error {
		assistants, err := m.api.ListAssistants(gctx)
		if err != nil {
			// Roster data is supplementary, not required for the page.
			logger.Warn("assistant roster unavailable", "error", err)
			return nil
		}
		roster = assistants
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, &FetchError{Generation: generation, Err: err}
	}

	return &models.Snapshot{
		ViewModel:  metrics.BuildViewModel(analytics),
		Daily:      metrics.BuildDailySeries(summary),
		Sentiment:  metrics.BuildSentimentSlices(analytics.SentimentBreakdown),
		Assistants: roster,
		Range:      timeRange,
		FetchedAt:  time.Now(),
		Generation: generation,
	}, nil
}

// Export is a placeholder: it only raises a notification and generates no file.
func (m *Manager) Export(timeRange models.TimeRange) error {
	message := fmt.Sprintf("Export for the last %s is not available yet", timeRange)
	if err := m.notifier.Notify("Voice AI Platform", message); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}
	return nil
}

// handleEnvChange reloads configuration after the watched .env file changed.
func (m *Manager) handleEnvChange() {
	cfg, err := config.Load()
	if err != nil {
		m.broadcast(ErrorEvent{Service: "config", Error: err})
		return
	}

	m.mu.Lock()
	m.cfg = cfg
	m.mu.Unlock()

	logger.Info("configuration reloaded", "file", cfg.EnvFile)
	m.broadcast(ConfigReloadedEvent{Config: cfg})
}

// broadcast sends an event to the main channel and all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	select {
	case m.eventChan <- event:
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
func (m *Manager) Subscribe() chan ServiceEvent {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch
}

// WaitForEvent returns a command that delivers the next service event.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

// Close stops the config watcher and releases resources.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stopChan)
		if m.watcher != nil {
			err = m.watcher.Close()
		}
	})
	return err
}
