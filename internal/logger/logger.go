// Package logger builds the structured logger used by the web server.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// New returns a slog.Logger writing tint formatted records to w.
// Colors are only emitted when w is a terminal.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer adapts a logger for APIs that want an io.Writer, such as http.Server.ErrorLog or web.ApacheLogFormat.
// Every write becomes one record at the given level.
type Writer struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (w Writer) Write(p []byte) (int, error) {
	w.Logger.Log(context.Background(), w.Level, strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}
