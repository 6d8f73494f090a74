package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/desertthunder/myflix/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	path := r.config.Log.File
	if path == "" {
		path = "myflix-tui.log"
	}
	restore, err := shared.RedirectToFile(r.logger, path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer restore()

	model := ui.NewModel(ctx, ui.Options{
		API:           r.api,
		Session:       r.session,
		Notifier:      r.notifier,
		GuestUsername: r.config.Profile.GuestUsername,
		Logger:        shared.WithLogger(r.logger, "component", "tui"),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
