// Package app wires the engine runner, the backend watcher, and the UI
// model into a running Bubble Tea program.
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tohojo/stgit-console/internal/backend"
	"github.com/tohojo/stgit-console/internal/stgit"
	"github.com/tohojo/stgit-console/internal/ui"
)

// Config captures the runtime options of the console.
type Config struct {
	Executable      string
	Dir             string
	ShowPatchNames  bool
	IndexOnly       bool
	ConfirmStageAll bool
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
}

const pollInterval = 2 * time.Second

// Run starts the console and blocks until the user quits.
func Run(cfg Config) error {
	runner := stgit.NewRunner(cfg.Executable, cfg.Dir)
	watcher := backend.NewWatcher(runner, pollInterval)
	defer watcher.Stop()

	model := ui.NewModel(runner, watcher, ui.Options{
		ShowPatchNames:  cfg.ShowPatchNames,
		IndexOnly:       cfg.IndexOnly,
		ConfirmStageAll: cfg.ConfirmStageAll,
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		Verbose:         cfg.Verbose,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("console terminated: %w", err)
	}
	return nil
}
