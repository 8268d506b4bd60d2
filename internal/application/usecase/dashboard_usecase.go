package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// RetryHint acompanha o placeholder de um widget que falhou.
const RetryHint = "unavailable, rerun to retry"

// MetricsRepositoryFactory builds the metrics client once the backend origin is known.
type MetricsRepositoryFactory func(baseURL string, timeout time.Duration) repository.MetricsRepository

// ReportStorageFactory builds the report storage for the resolved arguments.
// It may return nil when no storage is configured.
type ReportStorageFactory func(args *types.CLIArgs) repository.ReportStorage

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	newMetricsRepo   MetricsRepositoryFactory
	exportRepo       repository.ExportRepository
	configRepo       repository.ConfigRepository
	newReportStorage ReportStorageFactory
	console          types.ConsoleInterface
	logger           *zap.Logger
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	newMetricsRepo MetricsRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	newReportStorage ReportStorageFactory,
	console types.ConsoleInterface,
	logger *zap.Logger,
) *DashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardUseCase{
		newMetricsRepo:   newMetricsRepo,
		exportRepo:       exportRepo,
		configRepo:       configRepo,
		newReportStorage: newReportStorage,
		console:          console,
		logger:           logger,
	}
}

// NewDashboard creates an unmounted dashboard bound to the configured backend.
func (uc *DashboardUseCase) NewDashboard(args *types.CLIArgs) *viewmodel.Dashboard {
	timeout := time.Duration(args.RequestTimeout) * time.Second
	return viewmodel.NewDashboard(uc.newMetricsRepo(args.APIBaseURL, timeout))
}

// DetailModal monta o modal com a tabela padrão mais as entradas do arquivo de configuração.
func (uc *DashboardUseCase) DetailModal(args *types.CLIArgs) viewmodel.DetailModal {
	details := viewmodel.CategoryDetails(entity.DefaultCategoryDetails())
	for name, d := range args.CategoryDetails {
		details[name] = entity.CategoryDetail{Title: d.Title, Info: d.Info}
	}
	modal := viewmodel.NewDetailModal(details)
	if args.CategoryPlaceholder != nil {
		modal = modal.WithPlaceholder(*args.CategoryPlaceholder)
	}
	return modal
}

// Palette creates the chart palette selected by --palette-mode.
func (uc *DashboardUseCase) Palette(args *types.CLIArgs) (viewmodel.Palette, error) {
	return viewmodel.NewPalette(args.PaletteMode, nil)
}

// FetchDashboard mounts every widget, waits for all of them to resolve and unmounts.
func (uc *DashboardUseCase) FetchDashboard(ctx context.Context, args *types.CLIArgs) *viewmodel.Dashboard {
	dash := uc.NewDashboard(args)
	dash.MountAll(ctx)
	dash.Wait()
	dash.UnmountAll()
	return dash
}

// RunSnapshot renders the view selected by --view once and exports reports if requested.
func (uc *DashboardUseCase) RunSnapshot(ctx context.Context, args *types.CLIArgs) error {
	router := viewmodel.NewRouter()
	route, navErr := router.Navigate(args.View)

	var dash *viewmodel.Dashboard
	if route.View == viewmodel.ViewDashboard || args.ReportName != "" {
		status := uc.console.Status(fmt.Sprintf("Fetching carbon metrics from %s...", args.APIBaseURL))
		dash = uc.FetchDashboard(ctx, args)
		status.Stop()
	}

	switch route.View {
	case viewmodel.ViewDashboard:
		if err := uc.renderDashboard(dash, args); err != nil {
			return err
		}
	case viewmodel.ViewGamificationInfo:
		uc.renderGamificationInfo()
	case viewmodel.ViewTips:
		uc.renderTips()
	case viewmodel.ViewReports:
		uc.renderReports(args)
	case viewmodel.ViewAbout:
		uc.renderAbout()
	default:
		uc.renderNotFound(route)
		return navErr
	}

	if args.ReportName != "" {
		if _, err := uc.ExportReports(ctx, dash.Snapshot(), args); err != nil {
			return err
		}
	}
	return nil
}

func (uc *DashboardUseCase) renderDashboard(dash *viewmodel.Dashboard, args *types.CLIArgs) error {
	palette, err := uc.Palette(args)
	if err != nil {
		return err
	}
	modal := uc.DetailModal(args)

	// Total do dia
	total := dash.TotalCO2.State()
	uc.console.DisplayPanel("Total CO2 Today", withRetryHint(viewmodel.FormatTotal(total), total.Status))
	uc.console.DisplayProgress("Daily total", viewmodel.TotalPercent(total))

	// Quebra diária
	daily := dash.Daily.State()
	if daily.Loaded() {
		uc.console.DisplayPanel("Daily Breakdown", strings.Join(viewmodel.DailyLines(daily.Data), "\n"))
	} else {
		uc.console.DisplayPanel("Daily Breakdown", withRetryHint(viewmodel.Placeholder, daily.Status))
	}

	// Gamificação
	game := dash.Gamification.State()
	body := fmt.Sprintf("Score: %s\nLevel: %s", viewmodel.FormatScore(game), viewmodel.FormatLevel(game))
	if level, ok := entity.LevelByName(viewmodel.FormatLevel(game)); ok {
		body += "\n\n" + level.Description
	}
	if !game.Loaded() {
		body = withRetryHint(body, game.Status)
	}
	uc.console.DisplayPanel("Gamification", body)
	uc.console.DisplayProgress("Score", viewmodel.ScorePercent(game))

	// Categorias
	categories := dash.Categories.State()
	if categories.Loaded() {
		selector := viewmodel.NewCategorySelector(palette)
		selector.SetData(categories.Data)

		table := uc.console.CreateTable()
		table.AddColumn("#")
		table.AddColumn("Category")
		table.AddColumn("Quantity")
		table.AddColumn("Color")
		table.AddColumn("Details")
		for i, c := range selector.Data() {
			content, _ := modal.Render(&viewmodel.Selection{Name: c.Name}, viewmodel.FormatNumber(c.Value))
			table.AddRow(i+1, content.Title, content.Value, selector.Color(i), content.Body)
		}
		uc.console.Println("\nCategory Emissions (Quantity)")
		uc.console.Print(table.Render())
	} else {
		uc.console.DisplayPanel("Category Emissions (Quantity)", withRetryHint(viewmodel.Placeholder, categories.Status))
	}

	// Série semanal
	weekly := dash.Weekly.State()
	if weekly.Loaded() {
		days := make([]types.DailyValue, 0, len(weekly.Data))
		for _, w := range weekly.Data {
			days = append(days, types.DailyValue{Day: w.Day, Value: w.Value})
		}
		uc.console.DisplayWeeklyBars(days)
	} else {
		uc.console.DisplayPanel("Total Carbon Emissions (Weekly)", withRetryHint(viewmodel.Placeholder, weekly.Status))
	}

	errs := dash.Snapshot().Errors
	widgets := make([]string, 0, len(errs))
	for widget := range errs {
		widgets = append(widgets, widget)
	}
	sort.Strings(widgets)
	for _, widget := range widgets {
		uc.console.LogWarning("%s unavailable: %s", widget, errs[widget])
	}
	return nil
}

func (uc *DashboardUseCase) renderGamificationInfo() {
	table := uc.console.CreateTable()
	table.AddColumn("Level")
	table.AddColumn("Description")
	table.AddColumn("Color")
	for _, level := range entity.GamificationLevels {
		table.AddRow(level.Name, level.Description, level.Color)
	}
	uc.console.Println("\nGamification Levels")
	uc.console.Print(table.Render())
}

func (uc *DashboardUseCase) renderTips() {
	var b strings.Builder
	for i, tip := range entity.Tips {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, tip)
	}
	uc.console.DisplayPanel("Tips to Reduce Your Digital Carbon Footprint", b.String())
}

func (uc *DashboardUseCase) renderReports(args *types.CLIArgs) {
	uc.console.DisplayPanel("Reports", "Reports Coming Soon")
	if args.ReportName == "" {
		uc.console.LogInfo("Use --report-name and --report-type (csv, json, pdf) to export a dashboard snapshot.")
	}
}

func (uc *DashboardUseCase) renderAbout() {
	for _, section := range entity.About {
		uc.console.DisplayPanel(section.Title, section.Body)
	}
}

func (uc *DashboardUseCase) renderNotFound(route viewmodel.Route) {
	paths := make([]string, 0, len(viewmodel.Routes))
	for _, r := range viewmodel.Routes {
		paths = append(paths, r.Path)
	}
	uc.console.DisplayPanel("404 Not Found",
		fmt.Sprintf("No view at %q.\nAvailable views: %s", route.Path, strings.Join(paths, ", ")))
}

// withRetryHint anexa a dica de retry quando o widget falhou.
func withRetryHint(value string, status viewmodel.Status) string {
	if status != viewmodel.StatusErrored {
		return value
	}
	return fmt.Sprintf("%s (%s)", value, RetryHint)
}
