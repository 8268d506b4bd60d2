package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driven/api"
	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driven/storage"
	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/carbonscope-dashboard-go/internal/application/usecase"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
	"github.com/diillson/carbonscope-dashboard-go/pkg/console"
	"github.com/diillson/carbonscope-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// O caso de uso depende do logger, que só existe depois de ler as flags.
	app.SetDashboardUseCaseFactory(func(logger *zap.Logger) *usecase.DashboardUseCase {
		newMetricsRepo := func(baseURL string, timeout time.Duration) repository.MetricsRepository {
			return api.NewMetricsRepository(baseURL, timeout, logger)
		}
		newReportStorage := func(args *types.CLIArgs) repository.ReportStorage {
			if args.S3Bucket == "" {
				return nil
			}
			return storage.NewS3ReportStorage(storage.S3Options{
				Bucket:  args.S3Bucket,
				Prefix:  args.S3Prefix,
				Profile: args.AWSProfile,
				Region:  args.AWSRegion,
			}, logger)
		}

		return usecase.NewDashboardUseCase(
			newMetricsRepo,
			exportRepo,
			configRepo,
			newReportStorage,
			consoleImpl,
			logger,
		)
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
