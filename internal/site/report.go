package site

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/metrics"
	"git.home.luguber.info/inful/docweaver/internal/vcs"
)

// Outcome is the final state of a build.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Report captures what a build did and how long each stage took.
type Report struct {
	BuildID        string
	Start          time.Time
	End            time.Time
	Outcome        Outcome
	Revision       vcs.Revision
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]metrics.ResultLabel
	Languages      int
	Categories     int
	Pages          int // pages rendered (languages x pages)
	Components     int // component definitions available
	ScopedStyles   int // components contributing a style block
	Files          int // files written to the output directory
	Templates      map[string]string
	Errors         []error
}

func newReport() *Report {
	return &Report{
		BuildID:        uuid.NewString(),
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]metrics.ResultLabel),
		Templates:      make(map[string]string),
	}
}

func (r *Report) recordStage(stage StageName, result metrics.ResultLabel, d time.Duration, recorder metrics.Recorder) {
	r.StageDurations[stage] = d
	r.StageResults[stage] = result
	recorder.ObserveStageDuration(string(stage), d)
	recorder.IncStageResult(string(stage), result)
}

// finish stamps the end time and derives the outcome from err.
func (r *Report) finish(err error) {
	r.End = time.Now()
	if err == nil {
		r.Outcome = OutcomeSuccess
		return
	}
	r.Errors = append(r.Errors, err)
	var se *StageError
	if stderrors.As(err, &se) && se.Kind == StageErrorCanceled {
		r.Outcome = OutcomeCanceled
		return
	}
	r.Outcome = OutcomeFailed
}

// Duration is the wall time of the build.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("build=%s outcome=%s duration=%s languages=%d categories=%d pages=%d components=%d styles=%d files=%d errors=%d",
		r.BuildID, r.Outcome, r.Duration().Truncate(time.Millisecond), r.Languages, r.Categories,
		r.Pages, r.Components, r.ScopedStyles, r.Files, len(r.Errors))
}

type reportJSON struct {
	SchemaVersion    int               `json:"schema_version"`
	BuildID          string            `json:"build_id"`
	Start            time.Time         `json:"start"`
	End              time.Time         `json:"end"`
	DurationMS       int64             `json:"duration_ms"`
	Outcome          Outcome           `json:"outcome"`
	Revision         *vcs.Revision     `json:"revision,omitempty"`
	StageDurationsMS map[string]int64  `json:"stage_durations_ms"`
	StageResults     map[string]string `json:"stage_results"`
	Counts           map[string]int    `json:"counts"`
	Templates        map[string]string `json:"templates"`
	Errors           []string          `json:"errors"`
}

func (r *Report) serializable() reportJSON {
	out := reportJSON{
		SchemaVersion:    1,
		BuildID:          r.BuildID,
		Start:            r.Start,
		End:              r.End,
		DurationMS:       r.Duration().Milliseconds(),
		Outcome:          r.Outcome,
		StageDurationsMS: make(map[string]int64, len(r.StageDurations)),
		StageResults:     make(map[string]string, len(r.StageResults)),
		Counts: map[string]int{
			"languages":     r.Languages,
			"categories":    r.Categories,
			"pages":         r.Pages,
			"components":    r.Components,
			"scoped_styles": r.ScopedStyles,
			"files":         r.Files,
		},
		Templates: r.Templates,
		Errors:    make([]string, 0, len(r.Errors)),
	}
	if r.Revision.Commit != "" {
		rev := r.Revision
		out.Revision = &rev
	}
	for k, v := range r.StageDurations {
		out.StageDurationsMS[string(k)] = v.Milliseconds()
	}
	for k, v := range r.StageResults {
		out.StageResults[string(k)] = string(v)
	}
	for _, err := range r.Errors {
		out.Errors = append(out.Errors, err.Error())
	}
	return out
}

// Persist writes the report as indented JSON to path, replacing any existing file.
func (r *Report) Persist(path string) error {
	data, err := json.MarshalIndent(r.serializable(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create report directory").
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	tmp := path + ".tmp"
	// #nosec G306 -- build reports are not sensitive
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write report").
			WithContext("path", tmp).
			Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to replace report").
			WithContext("path", path).
			Build()
	}
	return nil
}
