package widget

import (
	"slices"
	"strconv"
)

// Spinner is a drop-down choice between strings.
type Spinner struct {
	Base
	Items          []string
	Selected       int
	OnItemSelected *Handler[int]
}

func (s Spinner) Equal(other Widget) bool {
	o, ok := other.(Spinner)
	return ok && s.Base == o.Base &&
		s.Selected == o.Selected &&
		s.OnItemSelected == o.OnItemSelected &&
		slices.Equal(s.Items, o.Items)
}

func (s Spinner) WithCallbacks(fn CallbackMapper) Widget {
	s.Base = s.Base.MapCallbacks(fn)
	s.OnItemSelected = MapHandler(fn, "itemSelected", s.OnItemSelected)
	return s
}

func (s Spinner) Clone() Widget {
	s.Items = slices.Clone(s.Items)
	return s
}

func (s Spinner) Describe() []string {
	return []string{"itemCount=" + strconv.Itoa(len(s.Items)), "selected=" + strconv.Itoa(s.Selected)}
}

// ListView shows a list of items. Items are compared by value, so they
// should be immutable values themselves.
type ListView[T comparable] struct {
	Base
	Items       []T
	OnItemClick *Handler[T]
}

func (l ListView[T]) Equal(other Widget) bool {
	o, ok := other.(ListView[T])
	return ok && l.equal(o)
}

func (l ListView[T]) equal(o ListView[T]) bool {
	return l.Base == o.Base && l.OnItemClick == o.OnItemClick && slices.Equal(l.Items, o.Items)
}

func (l ListView[T]) WithCallbacks(fn CallbackMapper) Widget {
	return l.mapCallbacks(fn)
}

func (l ListView[T]) mapCallbacks(fn CallbackMapper) ListView[T] {
	l.Base = l.Base.MapCallbacks(fn)
	l.OnItemClick = MapHandler(fn, "itemClick", l.OnItemClick)
	return l
}

func (l ListView[T]) Clone() Widget {
	return l.clone()
}

func (l ListView[T]) clone() ListView[T] {
	l.Items = slices.Clone(l.Items)
	return l
}

func (l ListView[T]) Describe() []string {
	return []string{"itemCount=" + strconv.Itoa(len(l.Items))}
}

// SingleSelectList is a list with at most one selected item.
type SingleSelectList[T comparable] struct {
	ListView[T]
	Selected     T
	HasSelection bool
}

func (s SingleSelectList[T]) Equal(other Widget) bool {
	o, ok := other.(SingleSelectList[T])
	return ok && s.ListView.equal(o.ListView) &&
		s.HasSelection == o.HasSelection &&
		s.Selected == o.Selected
}

func (s SingleSelectList[T]) WithCallbacks(fn CallbackMapper) Widget {
	s.ListView = s.ListView.mapCallbacks(fn)
	return s
}

func (s SingleSelectList[T]) Clone() Widget {
	s.ListView = s.ListView.clone()
	return s
}

// MultiSelectList is a list with any number of selected items.
type MultiSelectList[T comparable] struct {
	ListView[T]
	Selected []T
}

func (m MultiSelectList[T]) Equal(other Widget) bool {
	o, ok := other.(MultiSelectList[T])
	return ok && m.ListView.equal(o.ListView) && slices.Equal(m.Selected, o.Selected)
}

func (m MultiSelectList[T]) WithCallbacks(fn CallbackMapper) Widget {
	m.ListView = m.ListView.mapCallbacks(fn)
	return m
}

func (m MultiSelectList[T]) Clone() Widget {
	m.ListView = m.ListView.clone()
	m.Selected = slices.Clone(m.Selected)
	return m
}

func (m MultiSelectList[T]) Describe() []string {
	return append(m.ListView.Describe(), "selectedCount="+strconv.Itoa(len(m.Selected)))
}
