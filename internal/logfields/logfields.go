package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLocale     = "locale"
	KeyPath       = "path"
	KeyTheme      = "theme"
	KeyTarget     = "target"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyEntry      = "entry"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Entry(loc string) slog.Attr      { return slog.String(KeyEntry, loc) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
