package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// Nomes das flags que têm chave correspondente no arquivo de configuração.
const (
	FlagAPIURL         = "api-url"
	FlagRequestTimeout = "request-timeout"
	FlagView           = "view"
	FlagPaletteMode    = "palette-mode"
	FlagRefresh        = "refresh"
	FlagReportName     = "report-name"
	FlagReportType     = "report-type"
	FlagDir            = "dir"
	FlagS3Bucket       = "s3-bucket"
	FlagS3Prefix       = "s3-prefix"
	FlagAWSProfile     = "aws-profile"
	FlagAWSRegion      = "aws-region"
	FlagServe          = "serve"
	FlagInteractive    = "interactive"
	FlagLogFile        = "log-file"
)

// supportedReportTypes são os formatos aceitos por --report-type.
var supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}

// SupportedReportType reports whether t is an accepted export format.
func SupportedReportType(t string) bool {
	return supportedReportTypes[t]
}

// ResolveArgs completes args in order: config file, CARBONSCOPE_API_URL, then
// the flags the user set explicitly, which always win. explicit may be nil.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs, explicit func(flag string) bool) error {
	if explicit == nil {
		explicit = func(string) bool { return false }
	}

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
		MergeConfig(args, cfg, explicit)
		uc.logger.Debug("Config file loaded")
	}

	if env := os.Getenv(types.APIBaseURLEnv); env != "" && !explicit(FlagAPIURL) {
		args.APIBaseURL = env
	}

	if err := applyDefaults(args); err != nil {
		return err
	}
	return validateArgs(args)
}

// MergeConfig copia para args os valores do arquivo, exceto os de flags explícitas.
func MergeConfig(args *types.CLIArgs, cfg *types.Config, explicit func(flag string) bool) {
	if cfg == nil {
		return
	}

	setString := func(flag string, dst *string, v string) {
		if v != "" && !explicit(flag) {
			*dst = v
		}
	}

	setString(FlagAPIURL, &args.APIBaseURL, cfg.APIBaseURL)
	setString(FlagView, &args.View, cfg.View)
	setString(FlagPaletteMode, &args.PaletteMode, cfg.PaletteMode)
	setString(FlagRefresh, &args.RefreshSchedule, cfg.RefreshSchedule)
	setString(FlagReportName, &args.ReportName, cfg.ReportName)
	setString(FlagDir, &args.Dir, cfg.Dir)
	setString(FlagS3Bucket, &args.S3Bucket, cfg.S3Bucket)
	setString(FlagS3Prefix, &args.S3Prefix, cfg.S3Prefix)
	setString(FlagAWSProfile, &args.AWSProfile, cfg.AWSProfile)
	setString(FlagAWSRegion, &args.AWSRegion, cfg.AWSRegion)
	// --interactive explícito vence o serve_addr do arquivo.
	if !explicit(FlagInteractive) {
		setString(FlagServe, &args.ServeAddr, cfg.ServeAddr)
	}
	setString(FlagLogFile, &args.LogFile, cfg.LogFile)

	if cfg.RequestTimeout > 0 && !explicit(FlagRequestTimeout) {
		args.RequestTimeout = cfg.RequestTimeout
	}
	if len(cfg.ReportType) > 0 && !explicit(FlagReportType) {
		args.ReportType = append([]string(nil), cfg.ReportType...)
	}

	if len(cfg.CategoryDetails) > 0 {
		if args.CategoryDetails == nil {
			args.CategoryDetails = make(map[string]types.CategoryDetailConfig, len(cfg.CategoryDetails))
		}
		for name, d := range cfg.CategoryDetails {
			args.CategoryDetails[name] = d
		}
	}
	if cfg.CategoryPlaceholder != nil {
		placeholder := *cfg.CategoryPlaceholder
		args.CategoryPlaceholder = &placeholder
	}
}

func applyDefaults(args *types.CLIArgs) error {
	if args.APIBaseURL == "" {
		args.APIBaseURL = types.DefaultAPIBaseURL
	}
	if args.View == "" {
		args.View = "/"
	}
	if args.PaletteMode == "" {
		args.PaletteMode = viewmodel.PalettePositional
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}

	// Diretório padrão é o diretório atual; caminhos relativos viram absolutos.
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return err
		}
		args.Dir = absDir
	}
	return nil
}

func validateArgs(args *types.CLIArgs) error {
	if args.Interactive && args.ServeAddr != "" {
		return types.ErrConflictingModes
	}
	if args.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must be zero or positive, got %d", args.RequestTimeout)
	}
	if _, err := viewmodel.NewPalette(args.PaletteMode, nil); err != nil {
		return err
	}
	for _, t := range args.ReportType {
		if !supportedReportTypes[t] {
			return fmt.Errorf("unsupported report type %q, expected csv, json or pdf", t)
		}
	}
	if args.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(args.RefreshSchedule); err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", args.RefreshSchedule, err)
		}
	}
	return nil
}
