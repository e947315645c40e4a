package sample

import (
	"unicode/utf8"

	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/widget"
)

var inputSample = Sample{
	Name:        "input",
	Title:       "Input",
	Description: "Two-way binding of a text field",
	Screen: []Element{
		{Type: "input", Name: "input_field"},
		{Type: "label", Name: "char_count"},
		{Type: "button", Name: "clear_button"},
	},
	New: func() Presenter { return &Input{} },
}

// Input mirrors a text field. Clearing only changes the presenter state;
// the binding writes the empty text back to the field.
type Input struct {
	presenter.Base

	text string
}

func (in *Input) Build(ctx presenter.BuildContext, ui *widget.Builder) {
	ui.Add(
		widget.Input{
			Base:          widget.Base{Key: "input_field"},
			Text:          in.text,
			Hint:          ctx.String("input.hint"),
			OnTextChanged: widget.On(in.textChanged),
		},
		widget.TextOf("char_count", ctx.String("input.length", utf8.RuneCountInString(in.text))),
		widget.ButtonOf("clear_button", ctx.String("input.clear"), widget.Do(in.clear)),
	)
}

func (in *Input) textChanged(text string) {
	in.SetState(func() { in.text = text })
}

func (in *Input) clear() {
	in.SetState(func() { in.text = "" })
}
