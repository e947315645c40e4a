// Package errors provides structured error handling for conduit.
//
// Most errors in this package describe programming mistakes in the code that
// builds or binds widgets: a widget without a key, a key without a binding,
// a write to a locked builder. They are expected to surface during
// development and tests, not to be handled at runtime.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind groups conduit errors by the rule they break.
type ErrorKind int

const (
	// KindUnknown is an error that is not one of conduit's own.
	KindUnknown ErrorKind = iota
	// KindKey indicates a missing, duplicate or unusable widget key.
	KindKey
	// KindBinding indicates a widget that could not be bound to a view.
	KindBinding
	// KindState indicates a write to a locked widget list.
	KindState
	// KindConfig indicates an invalid presenter or renderer configuration.
	KindConfig
	// KindBuild indicates a failure while building a widget list.
	KindBuild
	// KindRender indicates a failure while applying a widget list to a view.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindBinding:
		return "binding"
	case KindState:
		return "state"
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// ConduitError wraps an error with the operation that produced it.
type ConduitError struct {
	// Op is the operation that failed (e.g., "render.Renderer.Render").
	Op string
	// Kind is derived from Err unless set by the reporter.
	Kind ErrorKind
	// Err is the error that was raised.
	Err error
	// Presenter names the presenter involved, if any.
	Presenter string
	// StackTrace is the stack of the goroutine that reported the error.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *ConduitError) Error() string {
	if e.Presenter != "" {
		return fmt.Sprintf("%s [%s] presenter=%s: %v", e.Op, e.Kind, e.Presenter, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ConduitError) Unwrap() error {
	return e.Err
}

// MissingKeyError reports a widget that reached the reconciler without a
// usable key.
type MissingKeyError struct {
	// Widget describes the offending widget.
	Widget string
	// Index is the widget's position in its list.
	Index int
	// Reason is empty for a nil key, otherwise it explains why the key
	// cannot be used.
	Reason string
}

func (e *MissingKeyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("widget %s at index %d has an unusable key: %s", e.Widget, e.Index, e.Reason)
	}
	return fmt.Sprintf("widget %s at index %d has no key", e.Widget, e.Index)
}

// DuplicateKeyError reports two widgets sharing a key in one list.
type DuplicateKeyError struct {
	Key    any
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate widget key %v at index %d and %d", e.Key, e.First, e.Second)
}

// UnboundWidgetError reports a keyed widget without any registered binding.
type UnboundWidgetError struct {
	// Widget describes the widget that could not be bound.
	Widget string
	// Key is the widget key.
	Key any
	// Suggestion is the closest registered key, if one looks like a typo.
	Suggestion any
}

func (e *UnboundWidgetError) Error() string {
	msg := fmt.Sprintf("widget %s cannot be bound: no binding exists for key %v", e.Widget, e.Key)
	if e.Suggestion != nil {
		msg += fmt.Sprintf(" (did you mean %v?)", e.Suggestion)
	}
	return msg
}

// BindingTypeError reports a typed binding receiving a widget of another type.
type BindingTypeError struct {
	Key  any
	Want string
	Got  string
}

func (e *BindingTypeError) Error() string {
	return fmt.Sprintf("binding for key %v expects %s, got %s", e.Key, e.Want, e.Got)
}

// StateError reports a write to a widget list after it was locked. It
// usually means a reference escaped its render cycle.
type StateError struct {
	// Op is the rejected write (e.g., "Builder.Add").
	Op string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: widgets are locked once they are handed to rendering, changing them isn't allowed anymore", e.Op)
}

// ConfigurationError reports an invalid setup detected at construction.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Setting, e.Reason)
}

// BuildError represents a failure while a presenter built its widgets.
type BuildError struct {
	// Presenter is the type name of the presenter that failed.
	Presenter string
	// Recovered is the value Build panicked with, or nil.
	Recovered any
	// Err is set when the built list was rejected.
	Err error
	// StackTrace is the stack of the goroutine that reported the error.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Presenter, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Presenter, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Presenter)
}

func (e *BuildError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// KindOf returns the kind of the first conduit error found in err's chain.
func KindOf(err error) ErrorKind {
	var ce *ConduitError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	var (
		missing   *MissingKeyError
		duplicate *DuplicateKeyError
		unbound   *UnboundWidgetError
		mistyped  *BindingTypeError
		locked    *StateError
		config    *ConfigurationError
		build     *BuildError
	)
	switch {
	case stderrors.As(err, &missing), stderrors.As(err, &duplicate):
		return KindKey
	case stderrors.As(err, &unbound), stderrors.As(err, &mistyped):
		return KindBinding
	case stderrors.As(err, &locked):
		return KindState
	case stderrors.As(err, &config):
		return KindConfig
	case stderrors.As(err, &build):
		return KindBuild
	}
	return KindUnknown
}

// New is errors.New from the standard library.
func New(text string) error {
	return stderrors.New(text)
}

// As is errors.As from the standard library, re-exported so callers
// importing this package under its default name still have it.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join is errors.Join from the standard library.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
