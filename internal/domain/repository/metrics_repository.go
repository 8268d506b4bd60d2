package repository

import (
	"context"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// MetricsRepository defines the read-only interface to the metrics backend.
type MetricsRepository interface {
	GetDailyBreakdown(ctx context.Context) (entity.DailyBreakdown, error)
	GetTotalCO2(ctx context.Context) (entity.TotalCO2, error)
	GetGamification(ctx context.Context) (entity.GamificationStatus, error)
	GetCategoryDistribution(ctx context.Context) ([]entity.CategoryDatum, error)
	GetWeeklyTotals(ctx context.Context) ([]entity.WeeklyDatum, error)
}
