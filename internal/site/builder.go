package site

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/metrics"
)

// Builder compiles one project into a static site.
type Builder struct {
	projectDir  string
	outputDir   string
	strict      bool
	concurrency int
	recorder    metrics.Recorder
	logger      *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithStrict makes duplicate section or title languages fatal.
func WithStrict(strict bool) Option {
	return func(b *Builder) { b.strict = strict }
}

// WithConcurrency bounds parallel page parsing and rendering. n <= 0 means unbounded.
func WithConcurrency(n int) Option {
	return func(b *Builder) { b.concurrency = n }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// WithLogger sets the logger used by the build and every package it drives.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder returns a builder reading projectDir and writing to outputDir.
func NewBuilder(projectDir, outputDir string, opts ...Option) *Builder {
	b := &Builder{
		projectDir: projectDir,
		outputDir:  filepath.Clean(outputDir),
		recorder:   metrics.NoopRecorder{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) path(elem ...string) string {
	return filepath.Join(append([]string{b.projectDir}, elem...)...)
}

// Build runs every stage. The returned report is never nil, so callers can persist
// it for failed builds too.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := newReport()
	logger := b.logger.With(logfields.BuildID(report.BuildID))
	logger.Info("Starting build", logfields.Path(b.projectDir), slog.String("output", b.outputDir))

	if err := b.checkOutputDir(); err != nil {
		return b.complete(logger, report, err)
	}

	bs := &BuildState{Builder: b, Report: report}
	err := runStages(ctx, bs, []StageDef{
		{StageLoadConfig, stageLoadConfig},
		{StagePrepareOutput, stagePrepareOutput},
		{StageLoadComponents, stageLoadComponents},
		{StageLoadContent, stageLoadContent},
		{StageRenderPages, stageRenderPages},
		{StageCopyAssets, stageCopyAssets},
		{StageFinalize, stageFinalize},
	})
	if err != nil {
		b.abortStaging(bs)
	}
	return b.complete(logger, report, err)
}

// Check resolves every component and renders every page in memory without
// touching the output directory.
func (b *Builder) Check(ctx context.Context) (*Report, error) {
	report := newReport()
	logger := b.logger.With(logfields.BuildID(report.BuildID))
	logger.Info("Starting check", logfields.Path(b.projectDir))

	bs := &BuildState{Builder: b, Report: report}
	err := runStages(ctx, bs, []StageDef{
		{StageLoadConfig, stageLoadConfig},
		{StageLoadComponents, stageLoadComponents},
		{StageLoadContent, stageLoadContent},
		{StageVerifyPages, stageVerifyPages},
	})
	return b.complete(logger, report, err)
}

func (b *Builder) complete(logger *slog.Logger, report *Report, err error) (*Report, error) {
	report.finish(err)
	b.recorder.ObserveBuildDuration(report.Duration())
	b.recorder.IncBuildOutcome(string(report.Outcome))
	b.recorder.SetPagesRendered(report.Pages)
	b.recorder.SetComponentsScoped(report.ScopedStyles)

	attrs := []any{
		logfields.Outcome(string(report.Outcome)),
		logfields.DurationMS(float64(report.Duration().Milliseconds())),
		slog.Int("pages", report.Pages),
		slog.Int("files", report.Files),
	}
	if err != nil {
		logger.Error("Build failed", append(attrs, logfields.Error(err))...)
		return report, err
	}
	logger.Info("Build completed", attrs...)
	return report, nil
}

// checkOutputDir refuses output directories that would clear the project itself.
func (b *Builder) checkOutputDir() error {
	out, err := filepath.Abs(b.outputDir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve output directory").
			WithContext("path", b.outputDir).
			Build()
	}
	project, err := filepath.Abs(b.projectDir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve project directory").
			WithContext("path", b.projectDir).
			Build()
	}
	rel, err := filepath.Rel(out, project)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.ConfigError("output directory must not contain the project").
			WithContext("path", b.outputDir).
			Build()
	}
	return nil
}
