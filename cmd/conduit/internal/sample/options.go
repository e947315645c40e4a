package sample

import (
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/widget"
)

var optionsSample = Sample{
	Name:        "options",
	Title:       "Terms of Service",
	Description: "A check box gating a submit action",
	Screen: []Element{
		{Type: "checkbox", Name: "tos_accepted"},
		{Type: "button", Name: "submit", Params: map[string]any{"text": "Submit"}},
	},
	New: func() Presenter { return &Options{} },
}

// Options enables submit once the terms are accepted. Submitting resets
// the form and asks the view for a toast.
type Options struct {
	presenter.Base

	accepted  bool
	submitted string
}

func (o *Options) Build(ctx presenter.BuildContext, ui *widget.Builder) {
	o.submitted = ctx.String("options.submitted")
	ui.Add(
		widget.CheckBoxOf("tos_accepted", ctx.String("options.accept"), o.accepted, widget.On(o.check)),
		widget.Plain{Base: widget.Base{
			Key:      "submit",
			Disabled: !o.accepted,
			OnClick:  widget.Do(o.submit),
		}},
	)
}

func (o *Options) check(checked bool) {
	o.SetState(func() { o.accepted = checked })
}

func (o *Options) submit() {
	var message string
	o.SetState(func() {
		o.accepted = false
		message = o.submitted
	})
	// Toasts are volatile and not part of the state.
	if t, ok := o.View().(Toaster); ok {
		t.Toast(message)
	}
}
