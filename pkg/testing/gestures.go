package testing

import (
	"fmt"
	"slices"

	"github.com/go-drift/conduit/pkg/widget"
)

// interactive returns the widget with key if a user could reach it.
func (pt *PresenterTester) interactive(op string, key any) (widget.Widget, error) {
	w, ok := pt.Last().Find(key)
	if !ok {
		return nil, fmt.Errorf("%s: no widget with key %v", op, key)
	}
	switch base := w.Common(); {
	case !base.Visible():
		return nil, fmt.Errorf("%s: widget %s is hidden", op, widget.String(w))
	case !base.Enabled():
		return nil, fmt.Errorf("%s: widget %s is disabled", op, widget.String(w))
	}
	return w, nil
}

// Click invokes the click handler of the widget with key.
func (pt *PresenterTester) Click(key any) error {
	w, err := pt.interactive("Click", key)
	if err != nil {
		return err
	}
	onClick := w.Common().OnClick
	if onClick == nil {
		return fmt.Errorf("Click: widget %s has no click handler", widget.String(w))
	}
	onClick.Invoke()
	return nil
}

// TypeText replaces the text of an Input or Text widget as if the user had
// typed it.
func (pt *PresenterTester) TypeText(key any, text string) error {
	w, err := pt.interactive("TypeText", key)
	if err != nil {
		return err
	}
	var handler *widget.Handler[string]
	switch w := w.(type) {
	case widget.Input:
		if w.MaxLength > 0 && len([]rune(text)) > w.MaxLength {
			text = string([]rune(text)[:w.MaxLength])
		}
		handler = w.OnTextChanged
	case widget.Text:
		handler = w.OnTextChanged
	default:
		return fmt.Errorf("TypeText: widget %s is not editable", widget.String(w))
	}
	if handler == nil {
		return fmt.Errorf("TypeText: widget %s has no text handler", widget.String(w))
	}
	handler.Call(text)
	return nil
}

// Check flips a Switch or CheckBox to checked. Like a native view, it does
// nothing when the widget already shows that state.
func (pt *PresenterTester) Check(key any, checked bool) error {
	w, err := pt.interactive("Check", key)
	if err != nil {
		return err
	}
	var (
		current bool
		handler *widget.Handler[bool]
	)
	switch w := w.(type) {
	case widget.Switch:
		current, handler = w.Value, w.OnSwitch
	case widget.CheckBox:
		current, handler = w.Checked, w.OnCheckedChanged
	default:
		return fmt.Errorf("Check: widget %s is not checkable", widget.String(w))
	}
	if handler == nil {
		return fmt.Errorf("Check: widget %s has no check handler", widget.String(w))
	}
	if current != checked {
		handler.Call(checked)
	}
	return nil
}

// Seek moves a SeekBar to pos, in the range 0..100.
func (pt *PresenterTester) Seek(key any, pos int) error {
	w, err := pt.interactive("Seek", key)
	if err != nil {
		return err
	}
	bar, ok := w.(widget.SeekBar)
	if !ok {
		return fmt.Errorf("Seek: widget %s is not a seek bar", widget.String(w))
	}
	if pos < 0 || pos > 100 {
		return fmt.Errorf("Seek: position %d out of range 0..100", pos)
	}
	if bar.OnSeek == nil {
		return fmt.Errorf("Seek: widget %s has no seek handler", widget.String(w))
	}
	bar.OnSeek.Call(pos)
	return nil
}

// Select picks the item at index in a Spinner, or the option with id index
// in a RadioGroup.
func (pt *PresenterTester) Select(key any, index int) error {
	w, err := pt.interactive("Select", key)
	if err != nil {
		return err
	}
	switch w := w.(type) {
	case widget.Spinner:
		if index < 0 || index >= len(w.Items) {
			return fmt.Errorf("Select: index %d out of range (%d items)", index, len(w.Items))
		}
		if w.OnItemSelected == nil {
			return fmt.Errorf("Select: widget %s has no selection handler", widget.String(w))
		}
		w.OnItemSelected.Call(index)
	case widget.RadioGroup:
		if w.OnCheckedChange == nil {
			return fmt.Errorf("Select: widget %s has no selection handler", widget.String(w))
		}
		w.OnCheckedChange.Call(index)
	default:
		return fmt.Errorf("Select: widget %s has no selection", widget.String(w))
	}
	return nil
}

// ClickItem clicks item in a ListView, SingleSelectList or MultiSelectList
// with items of type T.
func ClickItem[T comparable](pt *PresenterTester, key any, item T) error {
	w, err := pt.interactive("ClickItem", key)
	if err != nil {
		return err
	}
	var list widget.ListView[T]
	switch w := w.(type) {
	case widget.ListView[T]:
		list = w
	case widget.SingleSelectList[T]:
		list = w.ListView
	case widget.MultiSelectList[T]:
		list = w.ListView
	default:
		return fmt.Errorf("ClickItem: widget %s is not a list of %T", widget.String(w), item)
	}
	if !slices.Contains(list.Items, item) {
		return fmt.Errorf("ClickItem: %v is not an item of %s", item, widget.String(w))
	}
	if list.OnItemClick == nil {
		return fmt.Errorf("ClickItem: widget %s has no item handler", widget.String(w))
	}
	list.OnItemClick.Call(item)
	return nil
}
