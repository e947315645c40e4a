package sample

import (
	"strconv"

	"github.com/go-drift/conduit/pkg/binding"
	"github.com/go-drift/conduit/pkg/widget"
)

// Alert is a dialog showing a message until the user dismisses it. No
// standard binding knows it; AlertBinding shows it on a Host.
type Alert struct {
	widget.Base
	Message   string
	OnDismiss *widget.Action
}

func (a Alert) Equal(other widget.Widget) bool { return widget.EqualValue(a, other) }

func (a Alert) WithCallbacks(fn widget.CallbackMapper) widget.Widget {
	a.Base = a.Base.MapCallbacks(fn)
	a.OnDismiss = widget.MapAction(fn, "dismiss", a.OnDismiss)
	return a
}

func (a Alert) Describe() []string {
	return []string{"message=" + strconv.Quote(a.Message)}
}

// AlertBinding shows Alert widgets on a Host.
type AlertBinding struct {
	host Host
}

// NewAlertBinding returns a binding for Alert widgets.
func NewAlertBinding(host Host) binding.Binding {
	return binding.Typed[Alert](&AlertBinding{host: host})
}

func (b *AlertBinding) OnAdded(a Alert) {}

func (b *AlertBinding) OnChanged(a Alert) {
	onDismiss := a.OnDismiss
	b.host.ShowAlert(a.Message, func() {
		if onDismiss != nil {
			onDismiss.Invoke()
		}
	})
}

func (b *AlertBinding) OnRemoved(a Alert) {
	b.host.DismissAlert()
}
