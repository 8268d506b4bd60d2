package repository

import (
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportSnapshotToCSV(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error)
	ExportSnapshotToJSON(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error)
	ExportSnapshotToPDF(snapshot entity.DashboardSnapshot, filename, outputDir string) (string, error)
}
