package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
)

// Endpoints of the metrics backend.
const (
	PathDailyBreakdown = "/api/daily_breakdown"
	PathTotalCO2       = "/api/total_co2"
	PathGamification   = "/api/gamification"
	PathCategoryPie    = "/api/category/pie"
	PathWeeklyTotal    = "/api/weekly/total"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes limita o tamanho de uma resposta lida do backend.
const maxBodyBytes = 1 << 20

// ErrorKind classifies why a fetch failed.
type ErrorKind string

const (
	KindNetwork   ErrorKind = "network"
	KindStatus    ErrorKind = "status"
	KindMalformed ErrorKind = "malformed"
	KindInvalid   ErrorKind = "invalid"
)

// FetchError is the Err side of a fetch result.
type FetchError struct {
	Endpoint  string
	Kind      ErrorKind
	RequestID string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MetricsRepositoryImpl implementa o MetricsRepository sobre HTTP/JSON.
type MetricsRepositoryImpl struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewMetricsRepository cria o repositório para o backend em baseURL.
// timeout zero mantém as requisições sem prazo próprio; o contexto ainda as cancela.
func NewMetricsRepository(baseURL string, timeout time.Duration, logger *zap.Logger) repository.MetricsRepository {
	return NewMetricsRepositoryWithClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewMetricsRepositoryWithClient permite injetar o http.Client (testes, transportes customizados).
func NewMetricsRepositoryWithClient(baseURL string, client *http.Client, logger *zap.Logger) *MetricsRepositoryImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsRepositoryImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// GetDailyBreakdown lê os contadores do dia.
func (r *MetricsRepositoryImpl) GetDailyBreakdown(ctx context.Context) (entity.DailyBreakdown, error) {
	var raw struct {
		EmailsSent    *int     `json:"emails_sent"`
		BrowsingHours *float64 `json:"browsing_hours"`
		CloudStorage  *float64 `json:"cloud_storage"`
	}
	reqID, err := r.getJSON(ctx, PathDailyBreakdown, &raw)
	if err != nil {
		return entity.DailyBreakdown{}, err
	}

	var missing []string
	if raw.EmailsSent == nil {
		missing = append(missing, "emails_sent")
	}
	if raw.BrowsingHours == nil {
		missing = append(missing, "browsing_hours")
	}
	if raw.CloudStorage == nil {
		missing = append(missing, "cloud_storage")
	}
	if len(missing) > 0 {
		return entity.DailyBreakdown{}, r.invalid(PathDailyBreakdown, reqID, fmt.Errorf("missing fields: %s", strings.Join(missing, ", ")))
	}

	d := entity.DailyBreakdown{
		EmailsSent:     *raw.EmailsSent,
		BrowsingHours:  *raw.BrowsingHours,
		CloudStorageGB: *raw.CloudStorage,
	}
	if err := d.Validate(); err != nil {
		return entity.DailyBreakdown{}, r.invalid(PathDailyBreakdown, reqID, err)
	}
	return d, nil
}

// GetTotalCO2 lê o total do dia; total ausente ou null é aceito.
func (r *MetricsRepositoryImpl) GetTotalCO2(ctx context.Context) (entity.TotalCO2, error) {
	var raw *entity.TotalCO2
	reqID, err := r.getJSON(ctx, PathTotalCO2, &raw)
	if err != nil {
		return entity.TotalCO2{}, err
	}
	if raw == nil {
		return entity.TotalCO2{}, r.invalid(PathTotalCO2, reqID, errors.New("expected a JSON object, got null"))
	}
	if err := raw.Validate(); err != nil {
		return entity.TotalCO2{}, r.invalid(PathTotalCO2, reqID, err)
	}
	return *raw, nil
}

// GetGamification lê score e nível.
func (r *MetricsRepositoryImpl) GetGamification(ctx context.Context) (entity.GamificationStatus, error) {
	var raw struct {
		Score *float64 `json:"score"`
		Level string   `json:"level"`
	}
	reqID, err := r.getJSON(ctx, PathGamification, &raw)
	if err != nil {
		return entity.GamificationStatus{}, err
	}
	if raw.Score == nil {
		return entity.GamificationStatus{}, r.invalid(PathGamification, reqID, errors.New("missing field: score"))
	}

	g := entity.GamificationStatus{Score: *raw.Score, Level: raw.Level}
	if err := g.Validate(); err != nil {
		return entity.GamificationStatus{}, r.invalid(PathGamification, reqID, err)
	}
	return g, nil
}

// GetCategoryDistribution lê a distribuição por categoria na ordem recebida.
func (r *MetricsRepositoryImpl) GetCategoryDistribution(ctx context.Context) ([]entity.CategoryDatum, error) {
	var raw []entity.CategoryDatum
	reqID, err := r.getJSON(ctx, PathCategoryPie, &raw)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, r.invalid(PathCategoryPie, reqID, errors.New("expected a JSON array, got null"))
	}
	for i, c := range raw {
		if err := c.Validate(); err != nil {
			return nil, r.invalid(PathCategoryPie, reqID, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return raw, nil
}

// GetWeeklyTotals lê a série semanal preservando a ordem dos dias.
func (r *MetricsRepositoryImpl) GetWeeklyTotals(ctx context.Context) ([]entity.WeeklyDatum, error) {
	var raw []entity.WeeklyDatum
	reqID, err := r.getJSON(ctx, PathWeeklyTotal, &raw)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, r.invalid(PathWeeklyTotal, reqID, errors.New("expected a JSON array, got null"))
	}
	for i, w := range raw {
		if err := w.Validate(); err != nil {
			return nil, r.invalid(PathWeeklyTotal, reqID, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return raw, nil
}

// getJSON faz um GET único, sem retry, e decodifica o corpo em out.
func (r *MetricsRepositoryImpl) getJSON(ctx context.Context, path string, out interface{}) (string, error) {
	reqID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return reqID, r.fail(path, reqID, KindNetwork, fmt.Errorf("error building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	resp, err := r.client.Do(req)
	if err != nil {
		return reqID, r.fail(path, reqID, KindNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return reqID, r.fail(path, reqID, KindNetwork, fmt.Errorf("error reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return reqID, r.fail(path, reqID, KindStatus, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return reqID, r.fail(path, reqID, KindMalformed, errors.New("empty response body"))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return reqID, r.fail(path, reqID, KindMalformed, fmt.Errorf("error decoding JSON: %w", err))
	}

	r.logger.Debug("Fetched metrics",
		zap.String("endpoint", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return reqID, nil
}

func (r *MetricsRepositoryImpl) invalid(path, reqID string, err error) error {
	return r.fail(path, reqID, KindInvalid, err)
}

func (r *MetricsRepositoryImpl) fail(path, reqID string, kind ErrorKind, err error) error {
	fe := &FetchError{Endpoint: path, Kind: kind, RequestID: reqID, Err: err}
	// Cancelamento por desmontagem não é falha do backend.
	if errors.Is(err, context.Canceled) {
		r.logger.Debug("Fetch canceled", zap.String("endpoint", path), zap.String("request_id", reqID))
		return fe
	}
	r.logger.Warn("Fetch failed",
		zap.String("endpoint", path),
		zap.String("kind", string(kind)),
		zap.String("request_id", reqID),
		zap.Error(err))
	return fe
}
