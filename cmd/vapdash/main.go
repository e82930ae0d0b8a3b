// Package main is the entry point for the Voice AI Platform dashboard TUI.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kart8ik/Voice-AI-Platform/internal/api"
	"github.com/Kart8ik/Voice-AI-Platform/internal/app"
	"github.com/Kart8ik/Voice-AI-Platform/internal/config"
	"github.com/Kart8ik/Voice-AI-Platform/internal/notify"
	"github.com/Kart8ik/Voice-AI-Platform/internal/services"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/tabs/agents"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/tabs/dashboard"
	"github.com/Kart8ik/Voice-AI-Platform/internal/ui/tabs/info"
	"github.com/Kart8ik/Voice-AI-Platform/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	apiClient := api.New(cfg)

	svcManager, err := services.NewManager(cfg, apiClient, notify.NewDesktop())
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab receives the shared application state for consistent data access
	state := model.GetState()
	tabs := []app.Tab{
		dashboard.New(state), // Tab 0: Dashboard - call analytics overview
		agents.New(state),    // Tab 1: Agents - assistant roster
		info.New(state, cfg), // Tab 2: Info - configuration and app info
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`Voice AI Platform Dashboard - call analytics TUI

Usage:
  vapdash [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-3             Switch between tabs (Dashboard, Agents, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  t               Cycle the time range (1d, 7d, 30d, 90d)
  r               Refresh data
  e               Export (raises a notification; file export is not available yet)
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  VAP_API_BASE_URL       Analytics backend base URL (required)
  VAP_API_TOKEN          Bearer token for the backend (optional)
  VAP_REQUEST_TIMEOUT    Per-request timeout (default: 30s)
  VAP_DEFAULT_RANGE_DAYS Initial time range in days (default: 7)

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/vapdash/.env
  - ~/.vapdash/.env
  The file is watched; changes apply without a restart.`)
}
