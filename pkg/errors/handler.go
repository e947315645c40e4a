package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrorHandler is notified before conduit raises an error. Reporting does
// not stop the error: the failing render still panics afterwards.
type ErrorHandler interface {
	// HandleError receives diff and binding failures from the renderer.
	HandleError(err *ConduitError)
	// HandleBuildError receives a presenter's failed build.
	HandleBuildError(err *BuildError)
}

var (
	handler   ErrorHandler = NewLogHandler()
	handlerMu sync.RWMutex
)

// SetHandler installs h for the whole process and returns the handler it
// replaces, so tests can put it back. A nil h installs a fresh LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	if h == nil {
		handler = NewLogHandler()
	} else {
		handler = h
	}
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err with the current time unless it already carries one
// and passes it to the installed handler.
func Report(err *ConduitError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := Handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportErr wraps err into a ConduitError for op and reports it. The kind
// is derived from the error chain.
func ReportErr(op string, err error) {
	if err == nil {
		return
	}
	Report(&ConduitError{
		Op:         op,
		Kind:       KindOf(err),
		Err:        err,
		StackTrace: CaptureStack(),
	})
}

// ReportBuildError passes a failed presenter build to the installed
// handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := Handler(); h != nil {
		h.HandleBuildError(err)
	}
}

// CaptureStack formats the stack of the goroutine reporting an error,
// starting at the caller of the function that calls CaptureStack.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
