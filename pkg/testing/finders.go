package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/conduit/pkg/widget"
)

// Finder locates widgets in a rendered list.
type Finder interface {
	// Evaluate returns all matching widgets in list order.
	Evaluate(list widget.List) []widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widget.Widget
	finder  Finder
}

// Find evaluates f against the last rendered list.
func (pt *PresenterTester) Find(f Finder) FinderResult {
	pt.t.Helper()
	return FinderResult{widgets: f.Evaluate(pt.Last()), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns all matches in list order.
func (r FinderResult) All() []widget.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// Keys returns the keys of all matches.
func (r FinderResult) Keys() []any {
	keys := make([]any, len(r.widgets))
	for i, w := range r.widgets {
		keys[i] = widget.KeyOf(w)
	}
	return keys
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(list widget.List) []widget.Widget {
	return collectMatches(list, func(w widget.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches widgets of type W.
func ByType[W widget.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[W]()}
}

type keyFinder struct {
	key any
}

func (f *keyFinder) Evaluate(list widget.List) []widget.Widget {
	return collectMatches(list, func(w widget.Widget) bool {
		return f.key != nil && widget.KeyOf(w) == f.key
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%v)", f.key)
}

// ByKey returns a finder that matches the widget with key. A nil or
// non-comparable key matches nothing.
func ByKey(key any) Finder {
	if widget.CheckKey(key) != "" {
		key = nil
	}
	return &keyFinder{key: key}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(list widget.List) []widget.Widget {
	return collectMatches(list, func(w widget.Widget) bool {
		text, ok := textOf(w)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(text, f.text)
		}
		return text == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches widgets showing exactly text. It
// looks at Text, Button, Input, CheckBox and Toggle widgets.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches widgets whose text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

type predicateFinder struct {
	fn   func(widget.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(list widget.List) []widget.Widget {
	return collectMatches(list, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type enabledFinder struct {
	of Finder
}

func (f *enabledFinder) Evaluate(list widget.List) []widget.Widget {
	var results []widget.Widget
	for _, w := range f.of.Evaluate(list) {
		if w.Common().Enabled() {
			results = append(results, w)
		}
	}
	return results
}

func (f *enabledFinder) Description() string {
	return fmt.Sprintf("Enabled(%s)", f.of.Description())
}

// Enabled returns a finder that keeps the enabled widgets among the matches
// of of.
func Enabled(of Finder) Finder {
	return &enabledFinder{of: of}
}

func textOf(w widget.Widget) (string, bool) {
	switch w := w.(type) {
	case widget.Text:
		return w.Text, true
	case widget.Button:
		return w.Text, true
	case widget.Input:
		return w.Text, true
	case widget.CheckBox:
		return w.Text, true
	case widget.Toggle:
		return w.Text, true
	default:
		return "", false
	}
}

func collectMatches(list widget.List, predicate func(widget.Widget) bool) []widget.Widget {
	var results []widget.Widget
	for _, w := range list.All() {
		if predicate(w) {
			results = append(results, w)
		}
	}
	return results
}
