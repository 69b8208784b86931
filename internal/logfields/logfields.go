package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyComponent  = "component"
	KeyCategory   = "category"
	KeyPage       = "page"
	KeyLanguage   = "language"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyOutcome    = "outcome"
	KeyRevision   = "revision"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Category(id string) slog.Attr { return slog.String(KeyCategory, id) }
func Page(id string) slog.Attr { return slog.String(KeyPage, id) }
func Language(code string) slog.Attr { return slog.String(KeyLanguage, code) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func File(f string) slog.Attr { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Outcome(o string) slog.Attr { return slog.String(KeyOutcome, o) }
func Revision(rev string) slog.Attr { return slog.String(KeyRevision, rev) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
