package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docweaver/internal/logfields"
	"git.home.luguber.info/inful/docweaver/internal/metrics"
	"git.home.luguber.info/inful/docweaver/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output directory for the generated site" default:"./out" type:"path"`
	Strict      bool   `help:"Treat duplicate section or title languages as errors"`
	Concurrency int    `help:"Maximum pages processed in parallel (0 = unbounded)" default:"0"`
	Report      string `help:"Write a JSON build report to this path" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	logger := g.logger()
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if b.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	builder := site.NewBuilder(root.Project, b.Output,
		site.WithStrict(b.Strict),
		site.WithConcurrency(b.Concurrency),
		site.WithRecorder(recorder),
		site.WithLogger(logger),
	)
	report, err := builder.Build(g.ctx())

	if b.Report != "" {
		if perr := report.Persist(b.Report); perr != nil {
			logger.Warn("Failed to persist build report", logfields.Path(b.Report), logfields.Error(perr))
		}
	}
	if prom != nil {
		if merr := prom.WriteTextfile(b.MetricsFile); merr != nil {
			logger.Warn("Failed to write metrics file", logfields.Path(b.MetricsFile), logfields.Error(merr))
		}
	}
	if err != nil {
		return err
	}

	fmt.Printf("Built %d pages into %s\n", report.Pages, b.Output)
	return nil
}
