// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger on dst. The default level is warn so a
// plain run stays silent; verbose lowers it to info, quiet raises it to error.
func NewLogger(dst io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelInfo
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}))
}

// dropTime removes the timestamp so stderr output is reproducible.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}
