package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/carbonscope-dashboard-go/internal/application/usecase"
	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubMetrics struct {
	totalErr   error
	calls      atomic.Int32
	categories []entity.CategoryDatum
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
	if s.categories != nil {
		return s.categories, nil
	}
	return []entity.CategoryDatum{
		{Name: "Email", Value: 14},
		{Name: "Online Storage", Value: 15},
		{Name: "Video Streaming", Value: 3},
	}, nil
}

func (s *stubMetrics) GetWeeklyTotals(context.Context) ([]entity.WeeklyDatum, error) {
	return []entity.WeeklyDatum{{Day: "Mon", Value: 120}, {Day: "Tue", Value: 60}}, nil
}

func newTestServer(t *testing.T, repo *stubMetrics) *Server {
	t.Helper()
	return newTestServerWithPalette(t, repo, viewmodel.PalettePositional)
}

func newTestServerWithPalette(t *testing.T, repo *stubMetrics, mode string) *Server {
	t.Helper()
	s, err := NewServer(newTestUseCase(repo), testArgs(mode), nil)
	require.NoError(t, err)
	return s
}

func newTestUseCase(repo *stubMetrics) *usecase.DashboardUseCase {
	factory := func(string, time.Duration) repository.MetricsRepository { return repo }
	return usecase.NewDashboardUseCase(factory, export.NewExportRepository(), nil, nil, nil, nil)
}

func testArgs(paletteMode string) *types.CLIArgs {
	return &types.CLIArgs{APIBaseURL: types.DefaultAPIBaseURL, PaletteMode: paletteMode}
}

// segmentColor lê a cor do segmento renderizado para a categoria name.
func segmentColor(t *testing.T, body, name string) string {
	t.Helper()
	at := strings.Index(body, `title="`+name+`"`)
	require.GreaterOrEqual(t, at, 0, "category %s not rendered", name)
	rest := body[at:]
	const prefix = "background: "
	i := strings.Index(rest, prefix)
	require.GreaterOrEqual(t, i, 0)
	return rest[i+len(prefix) : i+len(prefix)+len("#ffeb3b")]
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestDashboardPage(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "532g")
	assert.Contains(t, body, "Emails Sent: 14")
	assert.Contains(t, body, "87.50")
	assert.Contains(t, body, "Beginner")
	assert.Contains(t, body, `href="/?category=2"`)
	assert.Contains(t, body, "Mon")
	assert.NotContains(t, body, `class="modal"`)
}

func TestDashboardCategoryClickOpensModal(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	body := get(t, s, "/?category=1").Body.String()
	assert.Contains(t, body, `class="modal"`)
	assert.Contains(t, body, "Emissions generated from storing and syncing files")
	assert.Contains(t, body, "Value: 15")

	// Índice fora da faixa não abre nada.
	body = get(t, s, "/?category=9").Body.String()
	assert.NotContains(t, body, `class="modal"`)
}

func TestDashboardScoreModalUsesPlaceholder(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	body := get(t, s, "/?score=1").Body.String()
	assert.Contains(t, body, viewmodel.DefaultPlaceholderInfo)
	assert.Contains(t, body, "Value: 87.50")
}

func TestDashboardHoverEmphasizesSegment(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	body := get(t, s, "/?active=0").Body.String()
	assert.Contains(t, body, `class="category active"`)
	assert.Contains(t, body, "width: 68px")
	assert.Contains(t, body, "width: 48px")
}

func TestStablePaletteSurvivesReorderAcrossRequests(t *testing.T) {
	repo := &stubMetrics{categories: []entity.CategoryDatum{
		{Name: "Email", Value: 14},
		{Name: "Video Streaming", Value: 3},
	}}
	s := newTestServerWithPalette(t, repo, viewmodel.PaletteStable)

	body := get(t, s, "/").Body.String()
	assert.Equal(t, "#ffeb3b", segmentColor(t, body, "Email"))
	assert.Equal(t, "#00c49f", segmentColor(t, body, "Video Streaming"))

	repo.categories = []entity.CategoryDatum{
		{Name: "Video Streaming", Value: 3},
		{Name: "Email", Value: 14},
	}
	body = get(t, s, "/").Body.String()
	assert.Equal(t, "#ffeb3b", segmentColor(t, body, "Email"))
	assert.Equal(t, "#00c49f", segmentColor(t, body, "Video Streaming"))
}

func TestPositionalPaletteRecolorsOnReorder(t *testing.T) {
	repo := &stubMetrics{categories: []entity.CategoryDatum{
		{Name: "Email", Value: 14},
		{Name: "Video Streaming", Value: 3},
	}}
	s := newTestServer(t, repo)

	assert.Equal(t, "#ffeb3b", segmentColor(t, get(t, s, "/").Body.String(), "Email"))

	repo.categories = []entity.CategoryDatum{
		{Name: "Video Streaming", Value: 3},
		{Name: "Email", Value: 14},
	}
	assert.Equal(t, "#00c49f", segmentColor(t, get(t, s, "/").Body.String(), "Email"))
}

func TestNewServerRejectsUnknownPaletteMode(t *testing.T) {
	_, err := NewServer(newTestUseCase(&stubMetrics{}), testArgs("rainbow"), nil)
	assert.ErrorIs(t, err, types.ErrUnknownPaletteMode)
}

func TestLandingScriptMatchesFadeRules(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	body := get(t, s, "/").Body.String()
	assert.Contains(t, body, "var distance = window.innerHeight *")
	// Sem distância de fade, o título só fica visível no topo, como em LandingFade.
	assert.Contains(t, body, ": (window.scrollY <= 0 ? 1 : 0);")
	assert.Equal(t, 1.0, viewmodel.LandingFade(0, 0).Opacity)
	assert.Equal(t, 0.0, viewmodel.LandingFade(1, 0).Opacity)
}

func TestDashboardFailedWidgetLinksRetry(t *testing.T) {
	repo := &stubMetrics{totalErr: errors.New("connection refused")}
	s := newTestServer(t, repo)

	body := get(t, s, "/").Body.String()
	assert.Contains(t, body, viewmodel.Placeholder)
	assert.Contains(t, body, `<a href="/">`+RetryHint+`</a>`)

	// Cada requisição monta um dashboard novo, então recarregar é o retry.
	repo.totalErr = nil
	body = get(t, s, "/").Body.String()
	assert.Contains(t, body, "532g")
	assert.EqualValues(t, 2, repo.calls.Load())
}

func TestStaticPages(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	tests := []struct {
		path string
		want string
	}{
		{"/gamification", "Expert"},
		{"/tips", "Use Ad Blockers"},
		{"/reports", "Reports Coming Soon"},
		{"/about", entity.About[0].Title},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestStaticPagesDoNotFetch(t *testing.T) {
	repo := &stubMetrics{}
	s := newTestServer(t, repo)

	get(t, s, "/tips")
	assert.EqualValues(t, 0, repo.calls.Load())
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	rec := get(t, s, "/settings")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
	assert.Contains(t, rec.Body.String(), "/settings")
}

func TestExportReport(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	rec := get(t, s, "/reports/export/csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), defaultReportName)
	assert.Contains(t, rec.Body.String(), "total_co2,grams,532")
}

func TestExportReportRejectsUnknownFormat(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	rec := get(t, s, "/reports/export/xml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSnapshotEndpoint(t *testing.T) {
	s := newTestServer(t, &stubMetrics{totalErr: errors.New("boom")})

	rec := get(t, s, "/api/snapshot")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap entity.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Nil(t, snap.TotalCO2)
	assert.Equal(t, "boom", snap.Errors[viewmodel.WidgetTotalCO2])
	assert.Len(t, snap.Categories, 3)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, &stubMetrics{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
