package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Run starts the TUI and blocks until the user quits. A non-empty
// refreshSchedule (standard cron syntax) remounts the widgets periodically.
func Run(ctx context.Context, opts Options, refreshSchedule string, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))

	if refreshSchedule != "" {
		scheduler, err := newRefresher(refreshSchedule, p.Send)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		m.logger.Info("Scheduled refresh enabled", zap.String("schedule", refreshSchedule))
	}

	_, err := p.Run()
	opts.Dashboard.UnmountAll()
	return err
}

// newRefresher agenda um refreshMsg a cada disparo do cron.
func newRefresher(schedule string, send func(tea.Msg)) (*cron.Cron, error) {
	parsed, err := cron.ParseStandard(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	c := cron.New()
	c.Schedule(parsed, cron.FuncJob(func() { send(refreshMsg{}) }))
	return c, nil
}
