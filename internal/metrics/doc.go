// Package metrics provides the build metrics hooks for docweaver.
//
// Components receive a Recorder through injection and default to NoopRecorder,
// so call sites never nil-check:
//
//	b := site.NewBuilder(project, out, site.WithRecorder(metrics.NoopRecorder{}))
//
// PrometheusRecorder backs the interface with client_golang collectors. Because
// docweaver is a one-shot CLI there is no scrape endpoint; WriteTextfile exports
// the registry for the node_exporter textfile collector instead.
package metrics
