package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("docweaver"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx.Run(&Global{Logger: slog.Default(), Context: context.Background()}, &cli)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		env     string
		verbose bool
		want    slog.Level
	}{
		{"", false, slog.LevelInfo},
		{"", true, slog.LevelDebug},
		{"error", true, slog.LevelDebug},
		{"DEBUG", false, slog.LevelDebug},
		{"warning", false, slog.LevelWarn},
		{"error", false, slog.LevelError},
		{"nonsense", false, slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("DOCWEAVER_LOG_LEVEL", tt.env)
			assert.Equal(t, tt.want, parseLogLevel(tt.verbose))
		})
	}
}

func TestInitBuildCheck(t *testing.T) {
	project := t.TempDir()
	out := filepath.Join(t.TempDir(), "site")
	reportPath := filepath.Join(t.TempDir(), "report.json")
	metricsPath := filepath.Join(t.TempDir(), "docweaver.prom")

	require.NoError(t, run(t, "-p", project, "init"))
	assert.FileExists(t, filepath.Join(project, "config.yml"))

	require.NoError(t, run(t, "-p", project, "check", "--strict"))

	require.NoError(t, run(t, "-p", project, "build", "-o", out,
		"--concurrency", "2", "--report", reportPath, "--metrics-file", metricsPath))
	assert.FileExists(t, filepath.Join(out, "en", "guide", "intro", "index.html"))
	assert.FileExists(t, filepath.Join(out, "en", "guide", "setup", "index.html"))
	assert.FileExists(t, filepath.Join(out, "index.html"))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "success", report["outcome"])

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(metrics), "docweaver_pages_rendered 2"))
}

func TestInitRefusesOverwrite(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, run(t, "-p", project, "init"))

	err := run(t, "-p", project, "init")
	require.Error(t, err)
	assert.Equal(t, 2, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	require.NoError(t, run(t, "-p", project, "init", "--force"))
}

func TestBuildFailureMapsExitCode(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, run(t, "-p", project, "init"))
	page := filepath.Join(project, "docs", "guide", "intro.html")
	require.NoError(t, os.WriteFile(page, []byte(`<title lang="en">X</title><section lang="en"><component name="nope"></component></section>`), 0o600))
	reportPath := filepath.Join(t.TempDir(), "report.json")

	err := run(t, "-p", project, "build", "-o", filepath.Join(t.TempDir(), "out"), "--report", reportPath)
	require.Error(t, err)
	assert.Equal(t, 3, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	data, readErr := os.ReadFile(reportPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), `"outcome": "failed"`)
}

func TestCheckMissingConfig(t *testing.T) {
	err := run(t, "-p", t.TempDir(), "check")
	require.Error(t, err)
	assert.Equal(t, 7, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}
