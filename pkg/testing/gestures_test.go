package testing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/conduit/pkg/widget"
)

func TestClick(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ui.Click("increment"); err != nil {
		t.Fatal(err)
	}
	if f.count != 1 {
		t.Errorf("count = %d, want 1", f.count)
	}
}

func TestClickRejects(t *testing.T) {
	ui := Attach(t, &form{})

	tests := []struct {
		key  string
		want string
	}{
		{"missing", "no widget with key missing"},
		{"submit", "is disabled"},
		{"secret", "is hidden"},
		{"label", "has no click handler"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ui.Click(tt.key)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Click(%s) = %v, want error containing %q", tt.key, err, tt.want)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ui.TypeText("name", "Grace Hopper"); err != nil {
		t.Fatal(err)
	}
	if got := ui.Text("name"); got != "Grace" {
		t.Errorf("Text(name) = %q, want the first 5 runes", got)
	}
	if err := ui.TypeText("label", "x"); err == nil {
		t.Error("TypeText on a text without handler should fail")
	}
	if err := ui.TypeText("increment", "x"); err == nil {
		t.Error("TypeText on a button should fail")
	}
}

func TestCheckUnlocksSubmit(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ui.Check("agree", true); err != nil {
		t.Fatal(err)
	}
	if !WidgetAs[widget.CheckBox](ui, "agree").Checked {
		t.Error("agree should be checked")
	}
	if err := ui.Click("submit"); err != nil {
		t.Errorf("Click(submit) after agreeing: %v", err)
	}

	renders := ui.RenderCount()
	if err := ui.Check("agree", true); err != nil {
		t.Fatal(err)
	}
	if got := ui.RenderCount(); got != renders {
		t.Errorf("checking a checked box rendered again: %d -> %d", renders, got)
	}
}

func TestSeek(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ui.Seek("volume", 40); err != nil {
		t.Fatal(err)
	}
	if got := WidgetAs[widget.SeekBar](ui, "volume").Progress; got != 0.4 {
		t.Errorf("Progress = %v, want 0.4", got)
	}
	if err := ui.Seek("volume", 101); err == nil {
		t.Error("Seek(101) should fail")
	}
}

func TestSelect(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ui.Select("color", 2); err != nil {
		t.Fatal(err)
	}
	if got := WidgetAs[widget.Spinner](ui, "color").Selected; got != 2 {
		t.Errorf("Selected = %d, want 2", got)
	}
	if err := ui.Select("color", 3); err == nil {
		t.Error("Select(3) should fail for three items")
	}
	if err := ui.Select("label", 0); err == nil {
		t.Error("Select on a text should fail")
	}
}

func TestClickItem(t *testing.T) {
	f := &form{}
	ui := Attach(t, f)

	if err := ClickItem(ui, "list", "b"); err != nil {
		t.Fatal(err)
	}
	if err := ClickItem(ui, "list", "z"); err == nil {
		t.Error("ClickItem(z) should fail")
	}
	if err := ClickItem(ui, "list", 1); err == nil {
		t.Error("ClickItem with the wrong item type should fail")
	}
	if diff := cmp.Diff([]string{"b"}, f.clicked); diff != "" {
		t.Errorf("clicked mismatch (-want +got):\n%s", diff)
	}
}
