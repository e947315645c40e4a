package widget

import (
	"testing"
)

func TestBaseDefaults(t *testing.T) {
	var b Base
	if !b.Enabled() || !b.Visible() {
		t.Errorf("zero Base should be enabled and visible, got enabled=%v visible=%v", b.Enabled(), b.Visible())
	}
	if b.Key != nil || b.OnClick != nil {
		t.Error("zero Base should have no key and no click handler")
	}
}

func TestEqualityIncludesEveryField(t *testing.T) {
	click := Do(func() {})
	base := ButtonOf("b", "Click me", click)

	tests := []struct {
		name  string
		other Widget
		want  bool
	}{
		{"same values", ButtonOf("b", "Click me", click), true},
		{"different text", ButtonOf("b", "Increment", click), false},
		{"different key", ButtonOf("c", "Click me", click), false},
		{"disabled", Button{Base: Base{Key: "b", OnClick: click, Disabled: true}, Text: "Click me"}, false},
		{"hidden", Button{Base: Base{Key: "b", OnClick: click, Hidden: true}, Text: "Click me"}, false},
		{"no callback", ButtonOf("b", "Click me", nil), false},
		{"other type", Text{Base: Base{Key: "b", OnClick: click}, Text: "Click me"}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreshCallbacksAreNotEqual(t *testing.T) {
	fn := func() {}
	a := ButtonOf("b", "x", Do(fn))
	b := ButtonOf("b", "x", Do(fn))
	if a.Equal(b) {
		t.Error("widgets with separately allocated handles must not be equal")
	}
}

func TestCollectionEquality(t *testing.T) {
	a := ListView[string]{Base: Base{Key: 1}, Items: []string{"x", "y"}}
	b := ListView[string]{Base: Base{Key: 1}, Items: []string{"x", "y"}}
	c := ListView[string]{Base: Base{Key: 1}, Items: []string{"x"}}
	if !a.Equal(b) {
		t.Error("lists with equal items should be equal")
	}
	if a.Equal(c) {
		t.Error("lists with different items should differ")
	}

	s1 := SingleSelectList[string]{ListView: a, Selected: "x", HasSelection: true}
	s2 := SingleSelectList[string]{ListView: b, Selected: "x", HasSelection: true}
	s3 := SingleSelectList[string]{ListView: b}
	if !s1.Equal(s2) || s1.Equal(s3) {
		t.Error("single selection equality should follow the selection")
	}
	if a.Equal(s1) {
		t.Error("a ListView is never equal to a SingleSelectList")
	}

	m1 := MultiSelectList[int]{ListView: ListView[int]{Base: Base{Key: 2}, Items: []int{1, 2}}, Selected: []int{2}}
	m2 := m1.Clone().(MultiSelectList[int])
	if !m1.Equal(m2) {
		t.Error("clone should be equal to its source")
	}
	m2.Selected[0] = 1
	if m1.Selected[0] != 2 {
		t.Error("clone should not share memory with its source")
	}
}

func TestWithCallbacksVisitsEverySlot(t *testing.T) {
	tests := []struct {
		name  string
		w     Widget
		slots []string
	}{
		{"button", ButtonOf("b", "x", Do(func() {})), []string{"click"}},
		{"input", Input{Base: Base{Key: "i", OnClick: Do(func() {})}, OnTextChanged: On(func(string) {})}, []string{"click", "textChanged"}},
		{"switch", SwitchOf("s", true, On(func(bool) {})), []string{"switch"}},
		{"checkbox", CheckBoxOf("c", "tos", false, On(func(bool) {})), []string{"checkedChanged"}},
		{"seekbar", SeekBarOf("k", 0.5, On(func(int) {})), []string{"seek"}},
		{"radio", RadioGroup{Base: Base{Key: "r"}, OnCheckedChange: On(func(int) {})}, []string{"checkedChange"}},
		{"spinner", Spinner{Base: Base{Key: "p"}, OnItemSelected: On(func(int) {})}, []string{"itemSelected"}},
		{"list", ListView[string]{Base: Base{Key: "l"}, OnItemClick: On(func(string) {})}, []string{"itemClick"}},
		{"no callbacks", TextOf("t", "x"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []string
			tt.w.WithCallbacks(func(slot string, cb Callback) Callback {
				seen = append(seen, slot)
				return cb
			})
			if len(seen) != len(tt.slots) {
				t.Fatalf("visited slots %v, want %v", seen, tt.slots)
			}
			for i := range seen {
				if seen[i] != tt.slots[i] {
					t.Errorf("slot %d = %q, want %q", i, seen[i], tt.slots[i])
				}
			}
		})
	}
}

func TestWithCallbacksReplacesHandles(t *testing.T) {
	var calls int
	stable := Do(func() { calls++ })
	w := ButtonOf("b", "x", Do(func() {})).WithCallbacks(func(string, Callback) Callback {
		return stable
	})

	got := w.(Button).OnClick
	if got != stable {
		t.Fatalf("OnClick = %p, want the replacement %p", got, stable)
	}
	got.Invoke()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		w    Widget
		want string
	}{
		{TextOf("label", "Clicked 0 times"), `Text(key=label, text="Clicked 0 times")`},
		{PlainOf(0x7f0a0001), "Plain(key=0x7f0a0001)"},
		{Plain{Base: Base{Disabled: true, Hidden: true}}, "Plain(enabled=false, visible=false)"},
		{ButtonOf("b", "Go", Do(func() {})), `Button(key=b, onClick, text="Go")`},
		{ListView[int]{Base: Base{Key: "l"}, Items: []int{1, 2}}, "ListView[int](key=l, itemCount=2)"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := String(tt.w); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCheckKey(t *testing.T) {
	if r := CheckKey(nil); r != "" {
		t.Errorf("CheckKey(nil) = %q, want empty", r)
	}
	if r := CheckKey("label"); r != "" {
		t.Errorf("CheckKey(string) = %q, want empty", r)
	}
	if r := CheckKey(map[string]int{}); r == "" {
		t.Error("CheckKey(map) should report an incomparable key")
	}
}
