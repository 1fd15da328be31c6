// Package logging builds the slog loggers used by the server and the
// terminal front end.
package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Anikethb04/Project-IMDB/internal/config"
)

const (
	maxSizeMB  = 20
	maxBackups = 3
	maxAgeDays = 14
)

func rotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// New returns a JSON logger writing to stdout, and also to a rotated file
// when cfg.File is set. The returned closer releases the file.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f := rotatingFile(cfg.File)
		w = io.MultiWriter(os.Stdout, f)
		closer = f
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})), closer
}

// NewTUI returns a logfmt logger that writes only to a rotated file, since
// the terminal belongs to the UI.
func NewTUI(path string, level slog.Level) (*slog.Logger, io.Closer) {
	f := rotatingFile(path)
	return slog.New(newCharmHandler(f, level)), f
}

func newCharmHandler(w io.Writer, level slog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          "browse",
		Formatter:       charmlog.LogfmtFormatter,
		Level:           charmlog.Level(level),
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
