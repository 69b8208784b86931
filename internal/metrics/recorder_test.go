package metrics

import (
	"sync"
	"testing"
	"time"
)

type testRecorder struct {
	mu             sync.Mutex
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[string]int
	pages          int
	components     int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{stageDurations: map[string]int{}, stageResults: map[string]map[ResultLabel]int{}, buildOutcomes: map[string]int{}}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stageDurations[stage]++
}

func (t *testRecorder) ObserveBuildDuration(_ time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildDurations++
}

func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}

func (t *testRecorder) IncBuildOutcome(outcome string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buildOutcomes[outcome]++
}

func (t *testRecorder) SetPagesRendered(n int)    { t.pages = n }
func (t *testRecorder) SetComponentsScoped(n int) { t.components = n }

var _ Recorder = (*testRecorder)(nil)
var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)

func recordBuild(r Recorder) {
	r.ObserveStageDuration("load_content", time.Millisecond)
	r.IncStageResult("load_content", ResultSuccess)
	r.ObserveStageDuration("render_pages", time.Millisecond)
	r.IncStageResult("render_pages", ResultFatal)
	r.ObserveBuildDuration(2 * time.Millisecond)
	r.IncBuildOutcome("failed")
	r.SetPagesRendered(0)
	r.SetComponentsScoped(3)
}

func TestRecorderContract(t *testing.T) {
	rec := newTestRecorder()
	recordBuild(rec)
	recordBuild(NoopRecorder{})

	if rec.stageDurations["load_content"] != 1 || rec.stageDurations["render_pages"] != 1 {
		t.Fatalf("unexpected stage durations: %v", rec.stageDurations)
	}
	if rec.stageResults["render_pages"][ResultFatal] != 1 {
		t.Fatalf("expected fatal render_pages result, got %v", rec.stageResults)
	}
	if rec.buildDurations != 1 || rec.buildOutcomes["failed"] != 1 {
		t.Fatalf("unexpected build observations: %d %v", rec.buildDurations, rec.buildOutcomes)
	}
	if rec.components != 3 {
		t.Fatalf("expected 3 scoped components, got %d", rec.components)
	}
}
