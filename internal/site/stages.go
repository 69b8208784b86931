package site

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docweaver/internal/component"
	"git.home.luguber.info/inful/docweaver/internal/config"
	"git.home.luguber.info/inful/docweaver/internal/content"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/metrics"
	"git.home.luguber.info/inful/docweaver/internal/render"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageName identifies a build stage.
type StageName string

// Canonical stage names.
const (
	StageLoadConfig     StageName = "load_config"
	StagePrepareOutput  StageName = "prepare_output"
	StageLoadComponents StageName = "load_components"
	StageLoadContent    StageName = "load_content"
	StageRenderPages    StageName = "render_pages"
	StageCopyAssets     StageName = "copy_assets"
	StageFinalize       StageName = "finalize"
	StageVerifyPages    StageName = "verify_pages"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"
	StageErrorCanceled StageErrorKind = "canceled"
)

// StageError records which stage failed and why.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// BuildState carries the artifacts produced by one stage to the next.
type BuildState struct {
	Builder    *Builder
	Report     *Report
	Site       *config.Site
	Template   *render.Template
	Registry   *component.Registry
	Tree       *content.Tree
	Stylesheet component.Stylesheet
	Renderer   *render.Renderer

	writer   render.Writer
	stageDir string
}

// runStages executes stages in order, recording timing and stopping on the first error.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	recorder := bs.Builder.recorder
	logger := bs.Builder.logger
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			se := &StageError{Kind: StageErrorCanceled, Stage: st.Name, Err: err}
			bs.Report.recordStage(st.Name, metrics.ResultCanceled, 0, recorder)
			return se
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		logger.Debug("Stage finished",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))

		if err == nil {
			bs.Report.recordStage(st.Name, metrics.ResultSuccess, dur, recorder)
			continue
		}
		kind := StageErrorFatal
		result := metrics.ResultFatal
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			kind = StageErrorCanceled
			result = metrics.ResultCanceled
		}
		bs.Report.recordStage(st.Name, result, dur, recorder)
		return &StageError{Kind: kind, Stage: st.Name, Err: err}
	}
	return nil
}
