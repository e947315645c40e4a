package sample

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/render"
	"github.com/go-drift/conduit/pkg/widget"
)

const friendDialog = "friend_dialog"

var counterSample = Sample{
	Name:        "counter",
	Title:       "Counter",
	Description: "Counts clicks, fills a progress bar and greets friends",
	Screen: []Element{
		{Type: "label", Name: "counter_label"},
		{Type: "button", Name: "increment"},
		{Type: "progress", Name: "progress_bar"},
		{Type: "input", Name: "text_input"},
		{Type: "label", Name: "text_length"},
		{Type: "image", Name: "badge"},
	},
	New: func() Presenter { return &Counter{} },
	Bind: func(r *render.Renderer, host Host) {
		r.Bind(friendDialog, NewAlertBinding(host))
	},
}

// Counter counts button clicks. The progress bar advances by a tenth per
// click and starts over after ten. Typing a text ending in "friend" opens
// an alert.
type Counter struct {
	presenter.Base

	count      int
	progress   int
	input      string
	showFriend bool
}

func (c *Counter) Build(ctx presenter.BuildContext, ui *widget.Builder) {
	label := ctx.String("counter.increment")
	if c.count == 0 {
		label = ctx.String("counter.click_me")
	}
	badge := "badge_off"
	if c.count >= 10 {
		badge = "badge_on"
	}

	ui.Add(
		widget.TextOf("counter_label", ctx.String("counter.label", c.count)),
		widget.ButtonOf("increment", label, widget.Do(c.increment)),
		widget.ProgressBarOf("progress_bar", float64(c.progress)/10),
		widget.Input{
			Base:          widget.Base{Key: "text_input"},
			Text:          c.input,
			Hint:          ctx.String("counter.hint"),
			OnTextChanged: widget.On(c.inputChanged),
		},
		widget.TextOf("text_length", strconv.Itoa(utf8.RuneCountInString(c.input))),
		widget.Image{Base: widget.Base{Key: "badge"}, Drawable: badge},
	)

	if c.showFriend {
		message := ctx.String("counter.click_first")
		if c.count > 0 {
			message = ctx.String("counter.thanks", c.count)
		}
		ui.Add(Alert{
			Base:    widget.Base{Key: friendDialog},
			Message: message,
			OnDismiss: widget.Do(func() {
				c.SetState(func() { c.showFriend = false })
			}),
		})
	}
}

func (c *Counter) increment() {
	c.SetState(func() {
		c.count++
		if c.progress >= 10 {
			c.progress = 0
		}
		c.progress++
	})
}

func (c *Counter) inputChanged(text string) {
	c.SetState(func() {
		c.input = text
		if strings.HasSuffix(text, "friend") {
			c.showFriend = true
		}
	})
}
