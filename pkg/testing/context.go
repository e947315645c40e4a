package testing

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// MockContext is a deterministic build context. String returns
// "mocked-<id>" followed by "-<arg>" for every argument, Locales returns
// the "und" tag, and ViewByID maps integer keys to themselves.
type MockContext struct{}

func (MockContext) String(id any, args ...any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "mocked-%v", id)
	for _, arg := range args {
		fmt.Fprintf(&b, "-%v", arg)
	}
	return b.String()
}

func (MockContext) Locales() []language.Tag {
	return []language.Tag{language.Und}
}

func (MockContext) ViewByID(key any) (int64, bool) {
	switch k := key.(type) {
	case int:
		return int64(k), true
	case int64:
		return k, true
	default:
		return 0, false
	}
}
