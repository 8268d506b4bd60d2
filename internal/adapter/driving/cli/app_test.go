package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/usecase"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

func newTestApp() *CLIApp {
	app := NewCLIApp("test")
	app.SetDashboardUseCaseFactory(func(logger *zap.Logger) *usecase.DashboardUseCase {
		return usecase.NewDashboardUseCase(nil, nil, nil, nil, nil, logger)
	})
	return app
}

func TestParseArgsReadsFlags(t *testing.T) {
	app := newTestApp()
	cmd := app.rootCmd
	require.NoError(t, cmd.ParseFlags([]string{
		"--api-url", "http://metrics:5000",
		"--view", "/tips",
		"-n", "weekly",
		"-y", "csv,pdf",
		"--s3-bucket", "reports",
		"-i",
	}))

	args := app.parseArgs(cmd)
	assert.Equal(t, "http://metrics:5000", args.APIBaseURL)
	assert.Equal(t, "/tips", args.View)
	assert.Equal(t, "weekly", args.ReportName)
	assert.Equal(t, []string{"csv", "pdf"}, args.ReportType)
	assert.Equal(t, "reports", args.S3Bucket)
	assert.True(t, args.Interactive)
	assert.True(t, cmd.Flags().Changed(usecase.FlagAPIURL))
	assert.False(t, cmd.Flags().Changed(usecase.FlagRequestTimeout))
}

func TestConflictingModesAreRejected(t *testing.T) {
	app := newTestApp()
	app.rootCmd.SetArgs([]string{"--interactive", "--serve", ":8080"})

	err := app.Execute()
	assert.ErrorIs(t, err, types.ErrConflictingModes)
}

func TestExecuteWithoutUseCase(t *testing.T) {
	app := NewCLIApp("test")
	app.rootCmd.SetArgs([]string{})

	assert.ErrorContains(t, app.Execute(), "use case not configured")
}

func TestNewLoggerIsSilentInInteractiveMode(t *testing.T) {
	logger, closeOutput, err := newLogger(&types.CLIArgs{Interactive: true})
	require.NoError(t, err)
	defer closeOutput()

	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNewLoggerWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbonscope.log")
	logger, closeOutput, err := newLogger(&types.CLIArgs{Interactive: true, LogFile: path, Verbose: true})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	logger.Info("dashboard mounted", zap.String("view", "/"))
	closeOutput()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dashboard mounted")
}

func TestRunWebAnnouncesAddressThroughPterm(t *testing.T) {
	var out bytes.Buffer
	pterm.SetDefaultOutput(&out)
	defer pterm.SetDefaultOutput(os.Stdout)

	app := newTestApp()
	args := &types.CLIArgs{APIBaseURL: types.DefaultAPIBaseURL, ServeAddr: "127.0.0.1:0"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.runWeb(ctx, app.newUseCase(zap.NewNop()), args))
	assert.Contains(t, out.String(), "Serving the web dashboard on 127.0.0.1:0")
}
