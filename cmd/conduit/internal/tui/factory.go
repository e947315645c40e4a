package tui

import (
	"fmt"

	"github.com/go-drift/conduit/pkg/native"
)

// View types created by the factories of this package.
const (
	TypeLabel    = "label"
	TypeButton   = "button"
	TypeInput    = "input"
	TypeSwitch   = "switch"
	TypeCheckBox = "checkbox"
	TypeProgress = "progress"
	TypeSeekBar  = "seekbar"
	TypeImage    = "image"
)

type factory struct {
	viewType string
	create   func(b base, params map[string]any) (element, error)
}

func (f factory) ViewType() string { return f.viewType }

// Create builds a view. The "name" parameter names the view, "text" sets
// the initial text of labels, buttons, inputs and check boxes.
func (f factory) Create(viewID int64, params map[string]any) (native.View, error) {
	name, err := stringParam(params, "name")
	if err != nil {
		return nil, err
	}
	return f.create(newBase(viewID, f.viewType, name), params)
}

// RegisterFactories registers a factory for every terminal view type.
// Image views load their drawables from drawables.
func RegisterFactories(reg *native.Registry, drawables *Drawables) {
	text := func(params map[string]any) string {
		s, _ := stringParam(params, "text")
		return s
	}
	for _, f := range []factory{
		{TypeLabel, func(b base, p map[string]any) (element, error) {
			return &Label{base: b, text: text(p)}, nil
		}},
		{TypeButton, func(b base, p map[string]any) (element, error) {
			return &Button{base: b, text: text(p)}, nil
		}},
		{TypeInput, func(b base, p map[string]any) (element, error) {
			return &Input{base: b, text: text(p)}, nil
		}},
		{TypeSwitch, func(b base, p map[string]any) (element, error) {
			return &Check{base: b, text: text(p)}, nil
		}},
		{TypeCheckBox, func(b base, p map[string]any) (element, error) {
			return &Check{base: b, text: text(p)}, nil
		}},
		{TypeProgress, func(b base, p map[string]any) (element, error) {
			return &Bar{base: b}, nil
		}},
		{TypeSeekBar, func(b base, p map[string]any) (element, error) {
			return &SeekBar{Bar: Bar{base: b}}, nil
		}},
		{TypeImage, func(b base, p map[string]any) (element, error) {
			drawable, err := stringParam(p, "drawable")
			return &Image{base: b, drawable: drawable, drawables: drawables}, err
		}},
	} {
		reg.RegisterFactory(f)
	}
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("view parameter %q: want string, got %T", key, v)
	}
	return s, nil
}
