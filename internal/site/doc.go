// Package site orchestrates a docweaver build.
//
// A build runs a fixed sequence of stages over a shared BuildState:
//
//	load_config -> prepare_output -> load_components -> load_content ->
//	render_pages -> copy_assets -> finalize
//
// load_content is the resolution barrier: every page has been expanded and
// every component scoped before render_pages starts, so rendering reads an
// immutable tree and stylesheet. All output is written to a sibling staging
// directory (<out>_stage) and only moved into the output directory by
// finalize. A failing stage removes the staging directory and leaves the
// output directory empty.
//
// Stage durations and counts are collected in a Report, which the CLI can
// persist as JSON, and forwarded to a metrics.Recorder.
package site
