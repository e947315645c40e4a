package tui

import (
	"fmt"
	"io"
	"io/fs"
	"log"

	"golang.org/x/text/language"

	"github.com/go-drift/conduit/cmd/conduit/internal/sample"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/render"
	"github.com/go-drift/conduit/pkg/resources"
)

// Config describes how to wire a sample to a terminal screen.
type Config struct {
	Sample sample.Sample
	// Catalog holds the strings; nil uses the sample strings.
	Catalog *resources.Catalog
	// Locales are the preferred locales; nil reads them from the
	// environment.
	Locales []language.Tag
	// Drawables holds the images; nil uses the sample images.
	Drawables fs.FS
	// Looper runs view changes on the UI thread.
	Looper native.Looper
	// Executor runs rebuilds; nil gives the presenter its own.
	Executor presenter.Executor
	Logger   *log.Logger
}

// App is a sample presenter bound to the views of a Screen.
type App struct {
	Screen    *Screen
	Views     *native.Registry
	Renderer  *render.Renderer
	View      *View
	Presenter sample.Presenter
}

// NewApp creates the sample's views, binds them and initializes its
// presenter. Nothing is rendered until Start.
func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	catalog := cfg.Catalog
	if catalog == nil {
		var err error
		if catalog, err = sample.Catalog(); err != nil {
			return nil, err
		}
	}
	images := cfg.Drawables
	if images == nil {
		images = sample.Drawables()
	}

	views := native.NewRegistry()
	RegisterFactories(views, NewDrawables(images, 8))
	screen := NewScreen(cfg.Sample.Title)
	for _, el := range cfg.Sample.Screen {
		params := map[string]any{"name": el.Name}
		for k, v := range el.Params {
			params[k] = v
		}
		v, err := views.Create(el.Type, el.Name, params)
		if err != nil {
			return nil, fmt.Errorf("create %s view %q: %w", el.Type, el.Name, err)
		}
		if err := screen.Add(v); err != nil {
			return nil, err
		}
	}

	var r *render.Renderer
	ctxOpts := []resources.ContextOption{
		resources.WithViews(func(key any) (int64, bool) { return r.ViewID(key) }),
		resources.WithLogger(logger),
	}
	if cfg.Locales != nil {
		ctxOpts = append(ctxOpts, resources.WithLocales(cfg.Locales...))
	}
	r = render.New(cfg.Looper, resources.NewContext(catalog, ctxOpts...), render.WithLogger(logger))
	n := r.AutoBindAll(screen)
	logger.Printf("tui: bound %d views of sample %s", n, cfg.Sample.Name)
	if cfg.Sample.Bind != nil {
		cfg.Sample.Bind(r, screen)
	}

	p := cfg.Sample.New()
	opts := []presenter.Option{presenter.WithLogger(logger), presenter.WithName(cfg.Sample.Name)}
	if cfg.Executor != nil {
		opts = append(opts, presenter.WithExecutor(cfg.Executor))
	}
	if err := presenter.Init(p, opts...); err != nil {
		return nil, err
	}

	return &App{
		Screen:    screen,
		Views:     views,
		Renderer:  r,
		View:      NewView(r, screen, cfg.Looper),
		Presenter: p,
	}, nil
}

// Start attaches the presenter to the view, which schedules the first
// render.
func (a *App) Start() { a.Presenter.AttachView(a.View) }

// Close stops the presenter and disposes the views.
func (a *App) Close() {
	a.Presenter.Close()
	for _, id := range a.Views.Names() {
		a.Views.Dispose(id)
	}
}
