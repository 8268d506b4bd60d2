package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// ExportSnapshot grava o snapshot em um único formato e retorna o caminho absoluto.
func (uc *DashboardUseCase) ExportSnapshot(snapshot entity.DashboardSnapshot, reportType, name, dir string) (string, error) {
	switch reportType {
	case "csv":
		return uc.exportRepo.ExportSnapshotToCSV(snapshot, name, dir)
	case "json":
		return uc.exportRepo.ExportSnapshotToJSON(snapshot, name, dir)
	case "pdf":
		return uc.exportRepo.ExportSnapshotToPDF(snapshot, name, dir)
	default:
		return "", fmt.Errorf("unsupported report type %q", reportType)
	}
}

// ExportReports writes one file per --report-type in parallel and, when an S3
// bucket is configured, uploads each of them. It returns the local paths.
func (uc *DashboardUseCase) ExportReports(ctx context.Context, snapshot entity.DashboardSnapshot, args *types.CLIArgs) ([]string, error) {
	paths := make([]string, len(args.ReportType))

	var g errgroup.Group
	for i, reportType := range args.ReportType {
		i, reportType := i, reportType
		g.Go(func() error {
			path, err := uc.ExportSnapshot(snapshot, reportType, args.ReportName, args.Dir)
			if err != nil {
				return fmt.Errorf("failed to export dashboard report to %s: %w", reportType, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.console.LogError("%s", err)
		return nil, err
	}

	for i, path := range paths {
		uc.console.LogSuccess("Successfully exported dashboard report to %s: %s", args.ReportType[i], path)
	}

	if args.S3Bucket == "" {
		return paths, nil
	}
	if err := uc.uploadReports(ctx, paths, args); err != nil {
		return paths, err
	}
	return paths, nil
}

func (uc *DashboardUseCase) uploadReports(ctx context.Context, paths []string, args *types.CLIArgs) error {
	if uc.newReportStorage == nil {
		return types.ErrNoReportStorage
	}
	store := uc.newReportStorage(args)
	if store == nil {
		return types.ErrNoReportStorage
	}

	// Falha ao obter a identidade não impede o upload.
	if account, err := store.CallerIdentity(ctx); err != nil {
		uc.console.LogWarning("Could not resolve AWS caller identity: %s", err)
	} else {
		uc.logger.Info("Uploading reports", zap.String("account", account), zap.String("bucket", args.S3Bucket))
	}

	for _, path := range paths {
		uri, err := store.UploadReport(ctx, path)
		if err != nil {
			uc.console.LogError("Failed to upload report: %s", err)
			return err
		}
		uc.console.LogSuccess("Uploaded report to %s", uri)
	}
	return nil
}
