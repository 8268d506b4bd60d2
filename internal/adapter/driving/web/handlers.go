package web

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/usecase"
	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// RetryHint acompanha o placeholder de um widget que falhou; o link recarrega a página.
const RetryHint = "retry"

// defaultReportName é usado no download quando --report-name não foi informado.
const defaultReportName = "carbonscope-dashboard"

type pageData struct {
	Title     string
	Path      string
	View      string
	Nav       []navLink
	FadeRatio float64
	Dashboard *dashboardData
	Levels    []entity.GamificationLevel
	Tips      []string
	About     []entity.AboutSection
	Formats   []string
}

type navLink struct {
	Text   string
	Path   string
	Active bool
}

type widget struct {
	Value  string
	Lines  []string
	Failed bool
}

type categoryRow struct {
	Index  int
	Name   string
	Value  string
	Color  string
	Radius int
	Active bool
}

type weeklyBar struct {
	Day     string
	Value   string
	Percent float64
}

type dashboardData struct {
	Total        widget
	TotalPercent float64

	Daily widget

	Score            widget
	Level            string
	LevelColor       string
	LevelDescription string
	ScorePercent     float64

	Categories       []categoryRow
	CategoriesFailed bool

	Weekly       []weeklyBar
	WeeklyFailed bool

	Modal  *viewmodel.ModalContent
	Errors []string
}

// handleDashboard monta um dashboard próprio da requisição, espera os widgets e desmonta.
func (s *Server) handleDashboard(c *gin.Context) {
	dash := s.svc.FetchDashboard(c.Request.Context(), s.args)
	data := buildDashboard(dash, s.palette)

	modal := s.svc.DetailModal(s.args)
	selector := viewmodel.NewCategorySelector(s.palette)
	if cats := dash.Categories.State(); cats.Loaded() {
		selector.SetData(cats.Data)
	}
	if raw := c.Query("active"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && selector.Hover(i) {
			for j := range data.Categories {
				data.Categories[j].Radius = selector.OuterRadius(j)
				data.Categories[j].Active = j == i
			}
		}
	}

	// Clique em uma categoria ou na pontuação abre o modal de detalhes.
	if raw := c.Query("category"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && selector.Click(i) {
			clicked, _ := selector.Clicked()
			if content, ok := modal.Render(selector.Modal().Selected(), viewmodel.FormatNumber(clicked.Value)); ok {
				data.Modal = &content
			}
		}
	} else if c.Query("score") != "" {
		sel := viewmodel.GamificationSelection()
		if content, ok := modal.Render(&sel, viewmodel.ScoreModalValue(dash.Gamification.State())); ok {
			data.Modal = &content
		}
	}

	page := s.newPage(viewmodel.Routes[0])
	page.Dashboard = data
	c.HTML(http.StatusOK, "page", page)
}

func (s *Server) handleStatic(view viewmodel.ViewID) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, _ := viewmodel.Resolve(c.Request.URL.Path)
		page := s.newPage(route)
		switch view {
		case viewmodel.ViewGamificationInfo:
			page.Levels = entity.GamificationLevels
		case viewmodel.ViewTips:
			page.Tips = entity.Tips
		case viewmodel.ViewAbout:
			page.About = entity.About
		case viewmodel.ViewReports:
			page.Formats = []string{"csv", "json", "pdf"}
		}
		c.HTML(http.StatusOK, "page", page)
	}
}

func (s *Server) handleNotFound(c *gin.Context) {
	route, _ := viewmodel.Resolve(c.Request.URL.Path)
	c.HTML(http.StatusNotFound, "page", s.newPage(route))
}

// handleExport gera o relatório em um diretório temporário e envia como anexo.
func (s *Server) handleExport(c *gin.Context) {
	format := c.Param("format")
	if !usecase.SupportedReportType(format) {
		c.String(http.StatusBadRequest, "unsupported report type %q, expected csv, json or pdf", format)
		return
	}

	dash := s.svc.FetchDashboard(c.Request.Context(), s.args)

	dir, err := os.MkdirTemp("", "carbonscope-report-*")
	if err != nil {
		s.logger.Error("Failed to create report directory", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to export report")
		return
	}
	defer os.RemoveAll(dir)

	name := s.args.ReportName
	if name == "" {
		name = defaultReportName
	}
	path, err := s.svc.ExportSnapshot(dash.Snapshot(), format, name, dir)
	if err != nil {
		s.logger.Error("Failed to export report", zap.String("format", format), zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to export report")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (s *Server) handleSnapshot(c *gin.Context) {
	dash := s.svc.FetchDashboard(c.Request.Context(), s.args)
	c.JSON(http.StatusOK, dash.Snapshot())
}

func (s *Server) newPage(route viewmodel.Route) pageData {
	items := viewmodel.NavItems()
	nav := make([]navLink, 0, len(items))
	for _, item := range items {
		nav = append(nav, navLink{Text: item.Text, Path: item.Path, Active: item.Path == route.Path})
	}
	return pageData{
		Title:     route.Title,
		Path:      route.Path,
		View:      string(route.View),
		Nav:       nav,
		FadeRatio: viewmodel.FadeDistanceRatio,
	}
}

func buildDashboard(dash *viewmodel.Dashboard, palette viewmodel.Palette) *dashboardData {
	data := &dashboardData{}

	total := dash.TotalCO2.State()
	data.Total = widget{Value: viewmodel.FormatTotal(total), Failed: total.Status == viewmodel.StatusErrored}
	data.TotalPercent = viewmodel.TotalPercent(total)

	daily := dash.Daily.State()
	data.Daily = widget{Value: viewmodel.Placeholder, Failed: daily.Status == viewmodel.StatusErrored}
	if daily.Loaded() {
		data.Daily.Lines = viewmodel.DailyLines(daily.Data)
	}

	game := dash.Gamification.State()
	data.Score = widget{Value: viewmodel.FormatScore(game), Failed: game.Status == viewmodel.StatusErrored}
	data.Level = viewmodel.FormatLevel(game)
	data.ScorePercent = viewmodel.ScorePercent(game)
	if level, ok := entity.LevelByName(data.Level); ok {
		data.LevelColor = level.Color
		data.LevelDescription = level.Description
	}

	cats := dash.Categories.State()
	data.CategoriesFailed = cats.Status == viewmodel.StatusErrored
	if cats.Loaded() {
		for i, cat := range cats.Data {
			data.Categories = append(data.Categories, categoryRow{
				Index:  i,
				Name:   cat.Name,
				Value:  viewmodel.FormatNumber(cat.Value),
				Color:  palette.Color(i, cat.Name),
				Radius: viewmodel.OuterRadius,
			})
		}
	}

	weekly := dash.Weekly.State()
	data.WeeklyFailed = weekly.Status == viewmodel.StatusErrored
	if weekly.Loaded() {
		maxValue := 0.0
		for _, w := range weekly.Data {
			maxValue = max(maxValue, w.Value)
		}
		for _, w := range weekly.Data {
			percent := 0.0
			if maxValue > 0 {
				percent = w.Value / maxValue * 100
			}
			data.Weekly = append(data.Weekly, weeklyBar{Day: w.Day, Value: viewmodel.FormatNumber(w.Value), Percent: percent})
		}
	}

	errs := dash.Snapshot().Errors
	for name, msg := range errs {
		data.Errors = append(data.Errors, name+": "+msg)
	}
	sort.Strings(data.Errors)
	return data
}

// widthStyle formata a largura CSS de uma barra.
func widthStyle(p float64) template.CSS {
	return template.CSS(fmt.Sprintf("width: %.2f%%", p))
}

// colorStyle formata a cor de fundo de um segmento.
func colorStyle(color string) template.CSS {
	return template.CSS("background: " + color)
}

var templateFuncs = template.FuncMap{
	"width":      widthStyle,
	"background": colorStyle,
	"retryHint":  func() string { return RetryHint },
}
