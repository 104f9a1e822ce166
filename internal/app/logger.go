package app

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/valvenet/config"
)

// newLogger builds the run logger from the validated log section. Each App
// gets its own logger; slog's default is left alone.
func newLogger(l config.Log, w io.Writer) *slog.Logger {
	// Run validated the config, so the level is one SlogLevel knows.
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
