package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driving/tui"
	"github.com/diillson/carbonscope-dashboard-go/internal/adapter/driving/web"
	"github.com/diillson/carbonscope-dashboard-go/internal/application/usecase"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
	"github.com/diillson/carbonscope-dashboard-go/pkg/version"
)

// DashboardUseCaseFactory builds the use case once the logger is configured.
type DashboardUseCaseFactory func(logger *zap.Logger) *usecase.DashboardUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	newUseCase     DashboardUseCaseFactory
	version        string
	logger         *zap.Logger
	closeLogOutput func()
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		logger:  zap.NewNop(),
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "carbonscope",
		Short: "CarbonScope digital carbon footprint dashboard",
		Long: `CarbonScope shows the carbon footprint of your digital activity,
fetched from a metrics backend, as a terminal snapshot, an interactive
terminal dashboard (--interactive) or a web dashboard (--serve).`,
		Version:           formattedVersion,
		SilenceUsage:      true,
		PersistentPostRun: app.syncLogger,
		RunE:              app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "CarbonScope Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String(usecase.FlagAPIURL, "", fmt.Sprintf("Origin of the metrics backend (default %s, env %s)", types.DefaultAPIBaseURL, types.APIBaseURLEnv))
	flags.Int(usecase.FlagRequestTimeout, 0, "Timeout in seconds for each metrics request (0 = no timeout)")
	flags.String(usecase.FlagView, "/", "View to open: /, /gamification, /tips, /reports, /about")
	flags.BoolP(usecase.FlagInteractive, "i", false, "Open the interactive terminal dashboard")
	flags.String(usecase.FlagServe, "", "Serve the web dashboard on this address, e.g. :8080")
	flags.String(usecase.FlagPaletteMode, "", "Category colors: positional (by index) or stable (by name)")
	flags.String(usecase.FlagRefresh, "", "Cron schedule to refresh the interactive dashboard, e.g. \"*/5 * * * *\"")
	flags.StringP(usecase.FlagReportName, "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP(usecase.FlagReportType, "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP(usecase.FlagDir, "d", "", "Directory to save the report files (default: current directory)")
	flags.String(usecase.FlagS3Bucket, "", "Upload exported reports to this S3 bucket")
	flags.String(usecase.FlagS3Prefix, "", "Key prefix for uploaded reports")
	flags.String(usecase.FlagAWSProfile, "", "AWS profile used for report uploads")
	flags.String(usecase.FlagAWSRegion, "", "AWS region used for report uploads")
	flags.String(usecase.FlagLogFile, "", "Write diagnostic logs to this file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetDashboardUseCaseFactory sets how the CLI builds its dashboard use case.
func (app *CLIApp) SetDashboardUseCaseFactory(factory DashboardUseCaseFactory) {
	app.newUseCase = factory
}

// parseArgs lê as flags da linha de comando para um CLIArgs.
func (app *CLIApp) parseArgs(cmd *cobra.Command) *types.CLIArgs {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	apiURL, _ := flags.GetString(usecase.FlagAPIURL)
	timeout, _ := flags.GetInt(usecase.FlagRequestTimeout)
	view, _ := flags.GetString(usecase.FlagView)
	interactive, _ := flags.GetBool(usecase.FlagInteractive)
	serve, _ := flags.GetString(usecase.FlagServe)
	paletteMode, _ := flags.GetString(usecase.FlagPaletteMode)
	refresh, _ := flags.GetString(usecase.FlagRefresh)
	reportName, _ := flags.GetString(usecase.FlagReportName)
	reportType, _ := flags.GetStringSlice(usecase.FlagReportType)
	dir, _ := flags.GetString(usecase.FlagDir)
	s3Bucket, _ := flags.GetString(usecase.FlagS3Bucket)
	s3Prefix, _ := flags.GetString(usecase.FlagS3Prefix)
	awsProfile, _ := flags.GetString(usecase.FlagAWSProfile)
	awsRegion, _ := flags.GetString(usecase.FlagAWSRegion)
	logFile, _ := flags.GetString(usecase.FlagLogFile)
	verbose, _ := flags.GetBool("verbose")

	return &types.CLIArgs{
		ConfigFile:      configFile,
		APIBaseURL:      apiURL,
		RequestTimeout:  timeout,
		View:            view,
		Interactive:     interactive,
		ServeAddr:       serve,
		PaletteMode:     paletteMode,
		RefreshSchedule: refresh,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		AWSProfile:      awsProfile,
		AWSRegion:       awsRegion,
		LogFile:         logFile,
		Verbose:         verbose,
	}
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if app.newUseCase == nil {
		return fmt.Errorf("dashboard use case not configured")
	}

	cliArgs := app.parseArgs(cmd)

	// A configuração é resolvida antes do logger existir; o log_file pode vir do arquivo.
	if err := app.newUseCase(zap.NewNop()).ResolveArgs(cliArgs, cmd.Flags().Changed); err != nil {
		return err
	}

	logger, closeOutput, err := newLogger(cliArgs)
	if err != nil {
		return err
	}
	app.logger, app.closeLogOutput = logger, closeOutput
	uc := app.newUseCase(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case cliArgs.Interactive:
		return app.runInteractive(ctx, uc, cliArgs)
	case cliArgs.ServeAddr != "":
		return app.runWeb(ctx, uc, cliArgs)
	default:
		// Exibe o banner de boas-vindas
		displayWelcomeBanner(app.version)

		// Verifica a versão mais recente disponível
		go version.CheckLatestVersion(app.version)

		return uc.RunSnapshot(ctx, cliArgs)
	}
}

func (app *CLIApp) runInteractive(ctx context.Context, uc *usecase.DashboardUseCase, args *types.CLIArgs) error {
	palette, err := uc.Palette(args)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Dashboard: uc.NewDashboard(args),
		Modal:     uc.DetailModal(args),
		Palette:   palette,
		View:      args.View,
		Logger:    app.logger,
	}
	if args.ReportName != "" {
		opts.Export = func(ctx context.Context, snapshot entity.DashboardSnapshot) ([]string, error) {
			return uc.ExportReports(ctx, snapshot, args)
		}
	}
	// A saída do pterm corromperia a tela alternativa; o resultado do export aparece no rodapé.
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	return tui.Run(ctx, opts, args.RefreshSchedule, os.Stdout)
}

func (app *CLIApp) runWeb(ctx context.Context, uc *usecase.DashboardUseCase, args *types.CLIArgs) error {
	server, err := web.NewServer(uc, args, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize web dashboard: %w", err)
	}
	displayWelcomeBanner(app.version)
	pterm.Info.Printfln("Serving the web dashboard on %s (Ctrl+C to stop)", args.ServeAddr)
	return server.Run(ctx, args.ServeAddr)
}

// newLogger segue a configuração de produção do zap; debug com --verbose.
// No modo interativo o log só é emitido quando há --log-file.
func newLogger(args *types.CLIArgs) (*zap.Logger, func(), error) {
	if args.Interactive && args.LogFile == "" {
		return zap.NewNop(), func() {}, nil
	}

	config := zap.NewProductionConfig()
	if args.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if args.LogFile != "" {
		config.OutputPaths = []string{args.LogFile}
		config.ErrorOutputPaths = []string{args.LogFile}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func (app *CLIApp) syncLogger(_ *cobra.Command, _ []string) {
	if app.closeLogOutput != nil {
		app.closeLogOutput()
	}
}
