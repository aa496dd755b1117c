package stxt

import "log/slog"

import "github.com/tinne26/stxt/internal/logger"

// Sets the logger used by stxt and its subpackages. By default,
// nothing is logged. Passing nil restores the default.
//
// Faces log their creation and glyph cache evictions at debug level,
// and font data errors found while drawing at warning level (drawing
// never fails, the affected glyphs are just skipped).
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Returns the current logger.
func Logger() *slog.Logger { return logger.Get() }
