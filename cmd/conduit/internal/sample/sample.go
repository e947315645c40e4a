// Package sample contains the presenters shown by "conduit run".
//
// Every sample describes the native views it needs as a list of Elements.
// The host creates those views, auto-binds them by name and attaches the
// sample's presenter. Widget keys are the element names.
package sample

import (
	"embed"
	"io/fs"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/render"
	"github.com/go-drift/conduit/pkg/resources"
)

//go:embed strings.yaml
var stringsYAML []byte

//go:embed drawables
var drawables embed.FS

// Element describes a native view a sample needs.
type Element struct {
	// Type is the native view type, e.g. "button".
	Type string
	// Name is the view name and the key of the widget bound to it.
	Name string
	// Params are passed to the view factory.
	Params map[string]any
}

// Host is implemented by hosts that can show an alert on top of the
// sample's views.
type Host interface {
	// ShowAlert shows message. It replaces the message of an alert that is
	// already shown. onDismiss is called when the user closes the alert.
	ShowAlert(message string, onDismiss func())
	// DismissAlert closes the alert without calling onDismiss.
	DismissAlert()
}

// Toaster is implemented by views that show short-lived messages.
type Toaster interface {
	Toast(message string)
}

// Presenter is a presenter with the methods of presenter.Base the host
// needs.
type Presenter interface {
	presenter.Presenter
	AttachView(v presenter.View)
	Close()
}

// Sample is a runnable demo.
type Sample struct {
	Name        string
	Title       string
	Description string
	Screen      []Element
	New         func() Presenter
	// Bind registers bindings the standard adapters don't provide. It may
	// be nil.
	Bind func(r *render.Renderer, host Host)
}

// All returns the samples in menu order.
func All() []Sample {
	return []Sample{counterSample, inputSample, fizzBuzzSample, optionsSample}
}

// Lookup returns the sample called name.
func Lookup(name string) (Sample, bool) {
	i := slices.IndexFunc(All(), func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, false
	}
	return All()[i], true
}

// Suggest returns the sample name closest to name, or "" if none is close.
func Suggest(name string) string {
	best, bestDist := "", 3
	for _, s := range All() {
		if d := levenshtein.ComputeDistance(name, s.Name); d < bestDist {
			best, bestDist = s.Name, d
		}
	}
	return best
}

// Catalog returns the strings used by the samples.
func Catalog() (*resources.Catalog, error) {
	return resources.ParseCatalog(stringsYAML)
}

// Drawables returns the images used by the samples.
func Drawables() fs.FS {
	sub, err := fs.Sub(drawables, "drawables")
	if err != nil {
		panic(err)
	}
	return sub
}
