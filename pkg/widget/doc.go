// Package widget provides the value types that describe UI state.
//
// A presenter describes its screen as a flat list of widgets. Every widget
// carries a key that names the native view it is rendered to:
//
//	func (p *counter) Build(ctx presenter.BuildContext, ui *widget.Builder) {
//	    ui.Add(
//	        widget.TextOf("label", fmt.Sprintf("Clicked %d times", p.count)),
//	        widget.ButtonOf("increment", "Increment", widget.Do(p.increment)),
//	    )
//	}
//
// # Two phases
//
// A Builder collects widgets while a build runs. Lock freezes the builder
// and returns a List; the builder rejects every later write with a
// *errors.StateError. Widgets are plain values, so a widget read from a List
// is a copy and cannot change the list it came from.
//
// # Equality
//
// Two widgets are equal when every field matches, including callbacks.
// Callbacks are handles (Action, Handler) compared by identity, never by
// what the wrapped function does. See Callback.
//
// # Custom widgets
//
// Embed Base and implement Equal and WithCallbacks:
//
//	type Alert struct {
//	    widget.Base
//	    Message   string
//	    OnDismiss *widget.Action
//	}
//
//	func (a Alert) Equal(other widget.Widget) bool { return widget.EqualValue(a, other) }
//
//	func (a Alert) WithCallbacks(fn widget.CallbackMapper) widget.Widget {
//	    a.Base = a.Base.MapCallbacks(fn)
//	    a.OnDismiss = widget.MapAction(fn, "dismiss", a.OnDismiss)
//	    return a
//	}
package widget
