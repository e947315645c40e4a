package widget

import (
	"testing"

	"github.com/google/uuid"
)

func TestDoAndOn(t *testing.T) {
	if Do(nil) != nil {
		t.Error("Do(nil) should return nil")
	}
	if On[string](nil) != nil {
		t.Error("On(nil) should return nil")
	}

	var got string
	h := On(func(s string) { got = s })
	h.Call("friend")
	if got != "friend" {
		t.Errorf("Call() delivered %q, want %q", got, "friend")
	}
	if h.ID() == uuid.Nil {
		t.Error("handler should carry a token")
	}

	var nilAction *Action
	nilAction.Invoke()
	if nilAction.ID() != uuid.Nil {
		t.Error("nil action should report uuid.Nil")
	}
}

func TestForwardCallsLatest(t *testing.T) {
	var calls []string
	first := Do(func() { calls = append(calls, "first") })
	second := Do(func() { calls = append(calls, "second") })

	current := Callback(first)
	proxy := Forward(first, func() Callback { return current }).(*Action)

	proxy.Invoke()
	current = second
	proxy.Invoke()
	current = nil
	proxy.Invoke()

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
	if proxy.ID() == first.ID() {
		t.Error("proxy should have its own token")
	}
}

func TestForwardHandlerIgnoresOtherKinds(t *testing.T) {
	var got []int
	h := On(func(v int) { got = append(got, v) })
	current := Callback(h)
	proxy := Forward(h, func() Callback { return current }).(*Handler[int])

	proxy.Call(1)
	current = Do(func() {})
	proxy.Call(2)

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("got = %v, want [1]", got)
	}
	if Forward(nil, nil) != nil {
		t.Error("Forward(nil) should return nil")
	}
}
