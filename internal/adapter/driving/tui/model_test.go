package tui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

type stubMetrics struct {
	totalErr error
	calls    atomic.Int32
}

func (s *stubMetrics) GetDailyBreakdown(context.Context) (entity.DailyBreakdown, error) {
	return entity.DailyBreakdown{EmailsSent: 14, BrowsingHours: 2.5, CloudStorageGB: 15.3}, nil
}

func (s *stubMetrics) GetTotalCO2(context.Context) (entity.TotalCO2, error) {
	s.calls.Add(1)
	if s.totalErr != nil {
		return entity.TotalCO2{}, s.totalErr
	}
	total := 532.0
	return entity.TotalCO2{Total: &total}, nil
}

func (s *stubMetrics) GetGamification(context.Context) (entity.GamificationStatus, error) {
	return entity.GamificationStatus{Score: 87.5, Level: "Beginner"}, nil
}

func (s *stubMetrics) GetCategoryDistribution(context.Context) ([]entity.CategoryDatum, error) {
	return []entity.CategoryDatum{
		{Name: "Email", Value: 14},
		{Name: "Online Storage", Value: 15},
		{Name: "Video Streaming", Value: 3},
	}, nil
}

func (s *stubMetrics) GetWeeklyTotals(context.Context) ([]entity.WeeklyDatum, error) {
	return []entity.WeeklyDatum{{Day: "Mon", Value: 120}, {Day: "Tue", Value: 80}}, nil
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, key(k))
	}
	return m
}

// settle espera os fetches e entrega a notificação de mudança ao modelo.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	m.dash.Wait()
	return update(t, m, changedMsg{})
}

func newTestModel(t *testing.T, repo *stubMetrics, opts Options) Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	dash := viewmodel.NewDashboard(repo)
	t.Cleanup(func() {
		dash.UnmountAll()
		dash.Wait()
		cancel()
	})

	opts.Dashboard = dash
	opts.Modal = viewmodel.NewDetailModal(viewmodel.CategoryDetails(entity.DefaultCategoryDetails()))
	m := NewModel(ctx, opts)
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})
	return settle(t, m)
}

func TestLandingCapturesInputUntilFaded(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})

	require.True(t, m.Fade().Interactive)
	m = press(t, m, "right")
	_, ok := m.selector.ActiveIndex()
	assert.False(t, ok, "landing title must swallow chart input")

	m = press(t, m, "enter")
	assert.Equal(t, 0.0, m.Fade().Opacity)
	assert.False(t, m.Fade().Interactive)

	m = press(t, m, "right", "right")
	i, ok := m.selector.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, viewmodel.ActiveOuterRadius, m.selector.OuterRadius(1))

	m = press(t, m, "left", "left")
	i, _ = m.selector.ActiveIndex()
	assert.Equal(t, 2, i, "hover wraps around")

	m = press(t, m, "esc")
	_, ok = m.selector.ActiveIndex()
	assert.False(t, ok)
}

func TestScrollDrivesFade(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})

	for i := 0; i < 7; i++ {
		m = press(t, m, "j")
	}
	assert.InDelta(t, 0.5, m.Fade().Opacity, 1e-9)

	// Ao reduzir a altura, a distância de fade é recalculada.
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})
	assert.Equal(t, 0.0, m.Fade().Opacity)
	assert.False(t, m.Fade().Interactive)

	m = press(t, m, "home")
	assert.Equal(t, 1.0, m.Fade().Opacity)
}

func TestCategoryClickOpensDetailModal(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})
	m = press(t, m, "enter", "right", "enter")

	require.True(t, m.selector.Modal().IsOpen())
	view := m.View()
	assert.Contains(t, view, "Email")
	assert.Contains(t, view, "Carbon emissions from sending")
	assert.Contains(t, view, "Value: 14")

	// Com o modal aberto, as setas não mudam a seleção.
	m = press(t, m, "right")
	i, _ := m.selector.ActiveIndex()
	assert.Equal(t, 0, i)

	m = press(t, m, "esc")
	assert.False(t, m.selector.Modal().IsOpen())
	assert.NotContains(t, m.View(), "esc to close")
}

func TestGamificationModalUsesPlaceholder(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})
	m = press(t, m, "enter", "g")

	view := m.View()
	assert.Contains(t, view, "Gamification")
	assert.Contains(t, view, viewmodel.DefaultPlaceholderInfo)
	assert.Contains(t, view, "Value: 87.50")
}

func TestLandingFadesOnTallTerminals(t *testing.T) {
	for _, height := range []int{40, 60} {
		t.Run(fmt.Sprintf("height %d", height), func(t *testing.T) {
			m := newTestModel(t, &stubMetrics{}, Options{})
			m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: height})
			require.True(t, m.Fade().Interactive)

			m = press(t, m, "enter")
			assert.Equal(t, 0.0, m.Fade().Opacity)
			assert.False(t, m.Fade().Interactive)

			m = press(t, m, "g")
			assert.True(t, m.game.IsOpen())
			assert.Contains(t, m.View(), viewmodel.DefaultPlaceholderInfo)
		})
	}
}

func TestScrollingPastFadeOnTallTerminal(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})

	for i := 0; i < 100; i++ {
		m = press(t, m, "j")
	}
	assert.False(t, m.Fade().Interactive)

	m = press(t, m, "right")
	_, ok := m.selector.ActiveIndex()
	assert.True(t, ok)
	assert.NotEmpty(t, m.View())
}

func TestSidebarSelectNavigatesAndRemounts(t *testing.T) {
	repo := &stubMetrics{}
	m := newTestModel(t, repo, Options{})
	require.EqualValues(t, 1, repo.calls.Load())

	m = press(t, m, "m")
	require.True(t, m.sidebar.IsOpen())

	m = press(t, m, "down", "enter")
	assert.False(t, m.sidebar.IsOpen())
	assert.Equal(t, viewmodel.ViewGamificationInfo, m.Route().View)
	assert.Contains(t, m.View(), "Expert")

	m = press(t, m, "m", "up", "enter")
	assert.Equal(t, viewmodel.ViewDashboard, m.Route().View)
	m = settle(t, m)
	assert.EqualValues(t, 2, repo.calls.Load())
	assert.True(t, m.Fade().Interactive, "scroll resets on navigation")
}

func TestFailedWidgetShowsRetryHint(t *testing.T) {
	repo := &stubMetrics{totalErr: errors.New("connection refused")}
	m := newTestModel(t, repo, Options{})
	m = press(t, m, "enter")

	view := m.View()
	assert.Contains(t, view, viewmodel.Placeholder+" ("+RetryHint+")")

	repo.totalErr = nil
	m = press(t, m, "r")
	m = settle(t, m)
	assert.EqualValues(t, 2, repo.calls.Load())
	assert.Contains(t, m.View(), "532g")
}

func TestUnknownInitialView(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{View: "/settings"})

	assert.Equal(t, viewmodel.ViewNotFound, m.Route().View)
	assert.Contains(t, m.View(), "404 Not Found")
}

func TestExportKey(t *testing.T) {
	var got entity.DashboardSnapshot
	export := func(_ context.Context, s entity.DashboardSnapshot) ([]string, error) {
		got = s
		return []string{"a.csv", "a.pdf"}, nil
	}
	m := newTestModel(t, &stubMetrics{}, Options{Export: export})

	_, cmd := m.Update(key("x"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Contains(t, m.View(), "Exported 2 report(s).")
	require.NotNil(t, got.TotalCO2)
	assert.Len(t, got.Categories, 3)
}

func TestExportKeyWithoutReportName(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})

	_, cmd := m.Update(key("x"))
	m = update(t, m, cmd())
	assert.Contains(t, m.status, "Export failed")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &stubMetrics{}, Options{})

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNewRefresher(t *testing.T) {
	_, err := newRefresher("not a schedule", func(tea.Msg) {})
	assert.ErrorContains(t, err, "invalid refresh schedule")

	c, err := newRefresher("*/5 * * * *", func(tea.Msg) {})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
