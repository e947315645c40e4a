package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// LogHandler is an ErrorHandler that writes errors to a stream, stderr by
// default.
type LogHandler struct {
	// Out receives the log lines.
	Out io.Writer
	// Verbose adds the kind, the presenter and the stack trace.
	Verbose bool
	// Color highlights the log prefix with ANSI escapes.
	Color bool
}

// NewLogHandler returns a handler writing to stderr, colored when stderr is
// a terminal.
func NewLogHandler() *LogHandler {
	fd := os.Stderr.Fd()
	return &LogHandler{
		Out:   os.Stderr,
		Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

func (h *LogHandler) prefix(label string) string {
	if h.Color {
		return ansiRed + "[conduit " + label + "]" + ansiReset
	}
	return "[conduit " + label + "]"
}

// HandleError logs a ConduitError.
func (h *LogHandler) HandleError(err *ConduitError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "%s %s [%s]", h.prefix("error"), err.Op, err.Kind)
		if err.Presenter != "" {
			fmt.Fprintf(w, " presenter=%s", err.Presenter)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "%s %s: %v\n", h.prefix("error"), err.Op, err.Err)
	}
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "%s %s\n", h.prefix("build error"), err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
