package sample

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/render"
	"github.com/go-drift/conduit/pkg/widget"
)

const fizzBuzzAlert = "alert"

var fizzBuzzSample = Sample{
	Name:        "fizzbuzz",
	Title:       "FizzBuzz",
	Description: "A custom widget with a custom binding",
	Screen: []Element{
		{Type: "button", Name: "click_me_btn"},
	},
	New: func() Presenter { return &FizzBuzz{} },
	Bind: func(r *render.Renderer, host Host) {
		r.Bind(fizzBuzzAlert, NewAlertBinding(host))
	},
}

// FizzBuzz counts clicks and shows an alert whenever the count is a fizz,
// a buzz or both.
type FizzBuzz struct {
	presenter.Base

	counter   int
	showAlert bool
}

func (f *FizzBuzz) Build(ctx presenter.BuildContext, ui *widget.Builder) {
	text := ctx.String("counter.click_me")
	if f.counter > 0 {
		text = strconv.Itoa(f.counter)
	}
	ui.Add(widget.ButtonOf("click_me_btn", text, widget.Do(f.click)))

	if f.showAlert {
		ui.Add(Alert{
			Base:    widget.Base{Key: fizzBuzzAlert},
			Message: fmt.Sprintf("%d -> %s", f.counter, FizzBuzzOf(f.counter)),
			OnDismiss: widget.Do(func() {
				f.SetState(func() { f.showAlert = false })
			}),
		})
	}
}

func (f *FizzBuzz) click() {
	f.SetState(func() {
		f.counter++
		if FizzBuzzOf(f.counter) != strconv.Itoa(f.counter) {
			f.showAlert = true
		}
	})
}

// FizzBuzzOf returns "Fizz" for numbers divisible by 3 or containing a 3,
// "Buzz" for numbers divisible by 5 or containing a 5, "FizzBuzz" for both
// and the number itself otherwise.
func FizzBuzzOf(n int) string {
	s := strconv.Itoa(n)
	fizz := n%3 == 0 || strings.Contains(s, "3")
	buzz := n%5 == 0 || strings.Contains(s, "5")
	switch {
	case fizz && buzz:
		return "FizzBuzz"
	case fizz:
		return "Fizz"
	case buzz:
		return "Buzz"
	default:
		return s
	}
}
