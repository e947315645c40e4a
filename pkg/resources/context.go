package resources

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/go-drift/conduit/pkg/presenter"
)

// Context is a presenter.BuildContext backed by a Catalog.
type Context struct {
	catalog *Catalog
	locales []language.Tag
	views   func(key any) (int64, bool)
	logger  *log.Logger
}

var _ presenter.BuildContext = (*Context)(nil)

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLocales sets the preferred locales, most preferred first. The
// default is LocalesFromEnv.
func WithLocales(tags ...language.Tag) ContextOption {
	return func(c *Context) {
		c.locales = tags
	}
}

// WithViews sets the function resolving widget keys to native view ids.
func WithViews(fn func(key any) (int64, bool)) ContextOption {
	return func(c *Context) {
		c.views = fn
	}
}

// WithLogger sets the logger reporting missing strings.
func WithLogger(l *log.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext returns a context for catalog. A nil catalog is valid; every
// lookup then misses.
func NewContext(catalog *Catalog, opts ...ContextOption) *Context {
	c := &Context{
		catalog: catalog,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.locales == nil {
		c.locales = LocalesFromEnv()
	}
	return c
}

// String formats the string id with args. A missing id yields "!id!", which
// stands out on screen without failing the build.
func (c *Context) String(id any, args ...any) string {
	name := fmt.Sprint(id)
	format, ok := c.catalog.Lookup(c.locales, name)
	if !ok {
		c.logger.Printf("resources: missing string %q", name)
		return "!" + name + "!"
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Locales returns the preferred locales.
func (c *Context) Locales() []language.Tag {
	return append([]language.Tag(nil), c.locales...)
}

// ViewByID returns the native view id bound to key.
func (c *Context) ViewByID(key any) (int64, bool) {
	if c.views == nil {
		return 0, false
	}
	return c.views(key)
}

// LocalesFromEnv returns the locale from LC_ALL, LC_MESSAGES or LANG, in
// that order of precedence, followed by English.
func LocalesFromEnv() []language.Tag {
	return localesFrom(os.Getenv)
}

func localesFrom(getenv func(string) string) []language.Tag {
	var tags []language.Tag
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := getenv(name)
		if value == "" {
			continue
		}
		// POSIX locales look like de_DE.UTF-8@euro.
		value, _, _ = strings.Cut(value, ".")
		value, _, _ = strings.Cut(value, "@")
		if value == "C" || value == "POSIX" {
			break
		}
		if tag, err := language.Parse(strings.ReplaceAll(value, "_", "-")); err == nil {
			tags = append(tags, tag)
		}
		break
	}
	if len(tags) == 0 || tags[0].String() != language.English.String() {
		tags = append(tags, language.English)
	}
	return tags
}
