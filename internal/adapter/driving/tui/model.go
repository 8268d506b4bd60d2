// Package tui is the interactive terminal front-end: scroll drives the landing
// fade, the sidebar drives the router and the category chart opens the detail modal.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// defaultHeight é usado até o primeiro tea.WindowSizeMsg.
const defaultHeight = 24

// ExportFunc writes the current snapshot as reports and returns the file paths.
type ExportFunc func(ctx context.Context, snapshot entity.DashboardSnapshot) ([]string, error)

// Options configures a Model.
type Options struct {
	Dashboard *viewmodel.Dashboard
	Modal     viewmodel.DetailModal
	Palette   viewmodel.Palette
	// View é o caminho inicial, "/" quando vazio.
	View   string
	Export ExportFunc
	Logger *zap.Logger
}

// changedMsg avisa que algum fetcher mudou de estado.
type changedMsg struct{}

// refreshMsg é enviado pelo agendamento de refresh.
type refreshMsg struct{}

type exportedMsg struct {
	paths []string
	err   error
}

// Model is the Bubble Tea model of the dashboard.
type Model struct {
	ctx    context.Context
	logger *zap.Logger

	dash     *viewmodel.Dashboard
	router   *viewmodel.Router
	sidebar  *viewmodel.Sidebar
	selector *viewmodel.CategorySelector
	modal    viewmodel.DetailModal
	game     *viewmodel.ModalState
	export   ExportFunc

	sideCursor int
	scroll     int
	width      int
	height     int

	spinner  spinner.Model
	progress progress.Model
	styles   Styles
	status   string
}

// NewModel cria o modelo; os fetchers só são montados em Init.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := viewmodel.NewRouter()
	view := opts.View
	if view == "" {
		view = "/"
	}
	if _, err := router.Navigate(view); err != nil {
		logger.Debug("Initial view not found", zap.String("path", view))
	}

	sidebar := viewmodel.NewSidebar(router)
	sidebar.Observe(func(s viewmodel.SidebarState) {
		logger.Debug("Sidebar transition", zap.Bool("open", s.Open), zap.String("route", s.Route.Path))
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		logger:   logger,
		dash:     opts.Dashboard,
		router:   router,
		sidebar:  sidebar,
		selector: viewmodel.NewCategorySelector(opts.Palette),
		modal:    opts.Modal,
		game:     &viewmodel.ModalState{},
		export:   opts.Export,
		height:   defaultHeight,
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		styles:   DefaultStyles(),
	}
}

// Init monta os widgets quando a rota inicial é o dashboard.
func (m Model) Init() tea.Cmd {
	if m.router.Current().View == viewmodel.ViewDashboard {
		m.dash.MountAll(m.ctx)
	}
	return tea.Batch(m.spinner.Tick, m.waitForChange())
}

// waitForChange bloqueia até a próxima notificação agregada do dashboard.
func (m Model) waitForChange() tea.Cmd {
	changes := m.dash.Changes()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-changes:
			return changedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Fade returns the landing title state for the current scroll and height.
func (m Model) Fade() viewmodel.Fade {
	return viewmodel.LandingFade(float64(m.scroll), float64(m.height))
}

// Route returns the active route.
func (m Model) Route() viewmodel.Route {
	return m.router.Current()
}

// Update trata teclas, mudanças de estado dos fetchers e o refresh agendado.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(40, max(10, msg.Width/3))
		m.scroll = m.clampScroll(m.scroll)
		return m, nil

	case changedMsg:
		if s := m.dash.Categories.State(); s.Loaded() {
			m.selector.SetData(s.Data)
		} else {
			m.selector.SetData(nil)
		}
		return m, m.waitForChange()

	case refreshMsg:
		if m.router.Current().View == viewmodel.ViewDashboard {
			m.dash.Remount(m.ctx)
			m.status = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("Exported %d report(s).", len(msg.paths))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	// Modal aberto consome a entrada.
	if m.game.IsOpen() || m.selector.Modal().IsOpen() {
		switch key {
		case "esc", "enter", " ":
			m.game.Close()
			m.selector.CloseModal()
		}
		return m, nil
	}

	if m.sidebar.IsOpen() {
		return m.handleSidebarKey(key)
	}

	switch key {
	case "m":
		m.sideCursor = m.currentItem()
		m.sidebar.Toggle()
		return m, nil
	case "down", "j":
		m.scroll = m.clampScroll(m.scroll + 1)
		return m, nil
	case "up", "k":
		m.scroll = m.clampScroll(m.scroll - 1)
		return m, nil
	case "pgdown", "ctrl+d":
		m.scroll = m.clampScroll(m.scroll + m.height/2)
		return m, nil
	case "pgup", "ctrl+u":
		m.scroll = m.clampScroll(m.scroll - m.height/2)
		return m, nil
	case "home":
		m.scroll = 0
		return m, nil
	}

	if m.router.Current().View != viewmodel.ViewDashboard {
		return m, nil
	}

	switch key {
	case "r":
		m.dash.Remount(m.ctx)
		m.status = "Reloading..."
		return m, nil
	case "x":
		return m, m.exportCmd()
	}

	// Enquanto visível, o título da landing captura a entrada.
	if m.Fade().Interactive {
		if key == "enter" {
			m.scroll = m.clampScroll(m.fadeDistance())
		}
		return m, nil
	}

	switch key {
	case "right", "l":
		m.hoverStep(1)
	case "left", "h":
		m.hoverStep(-1)
	case "esc":
		m.selector.Leave()
	case "enter", " ":
		if i, ok := m.selector.ActiveIndex(); ok {
			m.selector.Click(i)
		}
	case "g":
		m.game.Open(viewmodel.GamificationSelection())
	}
	return m, nil
}

func (m Model) handleSidebarKey(key string) (tea.Model, tea.Cmd) {
	items := m.sidebar.Items()
	switch key {
	case "up", "k":
		if m.sideCursor > 0 {
			m.sideCursor--
		}
	case "down", "j":
		if m.sideCursor < len(items)-1 {
			m.sideCursor++
		}
	case "esc", "m":
		m.sidebar.Close()
	case "enter":
		before := m.router.Current()
		route, ok := m.sidebar.Select(m.sideCursor)
		if ok {
			m.changeRoute(before, route)
		}
	}
	return m, nil
}

// changeRoute desmonta os widgets ao sair do dashboard e remonta ao voltar.
func (m *Model) changeRoute(from, to viewmodel.Route) {
	m.scroll = 0
	if from.View == viewmodel.ViewDashboard && to.View != viewmodel.ViewDashboard {
		m.dash.UnmountAll()
		m.selector.Leave()
	}
	if to.View == viewmodel.ViewDashboard && from.View != viewmodel.ViewDashboard {
		m.dash.MountAll(m.ctx)
	}
	m.status = ""
}

func (m *Model) hoverStep(delta int) {
	n := m.selector.Len()
	if n == 0 {
		return
	}
	i, ok := m.selector.ActiveIndex()
	switch {
	case !ok && delta > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = (i + delta + n) % n
	}
	m.selector.Hover(i)
}

func (m Model) exportCmd() tea.Cmd {
	if m.export == nil {
		m.logger.Debug("Export requested without --report-name")
		return func() tea.Msg {
			return exportedMsg{err: fmt.Errorf("no report name configured, start with --report-name")}
		}
	}
	snapshot := m.dash.Snapshot()
	ctx, export := m.ctx, m.export
	return func() tea.Msg {
		paths, err := export(ctx, snapshot)
		return exportedMsg{paths: paths, err: err}
	}
}

func (m Model) currentItem() int {
	current := m.router.Current().Path
	for i, item := range m.sidebar.Items() {
		if item.Path == current {
			return i
		}
	}
	return 0
}

func (m Model) fadeDistance() int {
	return int(viewmodel.FadeDistanceRatio*float64(m.height)) + 1
}

// clampScroll limita a rolagem ao conteúdo; no dashboard sempre é possível
// rolar além da distância de fade, qualquer que seja a altura do terminal.
func (m Model) clampScroll(s int) int {
	maxScroll := len(m.contentLines()) - m.bodyHeight()
	if m.router.Current().View == viewmodel.ViewDashboard {
		maxScroll = max(maxScroll, m.fadeDistance())
	}
	if s > maxScroll {
		s = maxScroll
	}
	if s < 0 {
		s = 0
	}
	return s
}
