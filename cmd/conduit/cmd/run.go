package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"

	"github.com/go-drift/conduit/cmd/conduit/internal/config"
	"github.com/go-drift/conduit/cmd/conduit/internal/sample"
	"github.com/go-drift/conduit/cmd/conduit/internal/tui"
	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/resources"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run a sample in the terminal",
		Long: `Run a sample presenter with terminal views.

Keys:
  tab, shift+tab   Move the focus
  enter, space     Press the focused view
  left, right      Move a seek bar
  q, ctrl+c        Quit

Strings come from resources.strings in conduit.yaml when set, otherwise
from the strings bundled with the samples. Render tracing is written to
render.log when render.debug is enabled.

Flags:
  --locale TAG     Preferred locale, e.g. de (default: resources.locales, then $LANG)`,
		Usage: "conduit run <sample> [--locale TAG]",
		Run:   runRun,
	})
}

type runOptions struct {
	locales []language.Tag
}

func parseRunArgs(args []string) ([]string, runOptions, error) {
	var rest []string
	var opts runOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value, isLocale := strings.CutPrefix(arg, "--locale=")
		if arg == "--locale" {
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("--locale requires a language tag")
			}
			value, isLocale = args[i+1], true
			i++
		}
		if !isLocale {
			rest = append(rest, arg)
			continue
		}
		tag, err := language.Parse(value)
		if err != nil {
			return nil, opts, fmt.Errorf("--locale: %w", err)
		}
		opts.locales = append(opts.locales, tag)
	}
	return rest, opts, nil
}

func runRun(args []string) error {
	args, opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("sample is required\n\nUsage: conduit run <sample>")
	}

	s, err := lookupSample(args[0])
	if err != nil {
		return err
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("conduit run needs a terminal")
	}

	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	catalog, err := loadCatalog(cfg, "")
	if err != nil {
		return err
	}
	locales := opts.locales
	if len(locales) == 0 && len(cfg.Locales) > 0 {
		locales = cfg.Locales
	}
	var images fs.FS
	if cfg.Drawables != "" {
		images = os.DirFS(cfg.Drawables)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "conduit")
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	// The alternate screen hides anything written to stderr, so errors are
	// collected and printed on exit.
	var reported lockedBuffer
	prev := errors.SetHandler(&errors.LogHandler{Out: io.MultiWriter(&reported, logger.Writer()), Verbose: cfg.Debug})
	defer errors.SetHandler(prev)

	var program *tea.Program
	looper := tui.NewLooper(func(msg tea.Msg) { program.Send(msg) })
	exec := presenter.NewSerialExecutor()
	defer exec.Close()
	guard := tui.NewGuard(exec, func() { program.Quit() })
	app, err := tui.NewApp(tui.Config{
		Sample:    s,
		Catalog:   catalog,
		Locales:   locales,
		Drawables: images,
		Looper:    looper,
		Executor:  guard,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	program = tea.NewProgram(tui.NewModel(app.Screen), tea.WithAltScreen())
	app.Start()
	_, err = program.Run()
	looper.Close()
	app.Close()

	if reported.Len() > 0 {
		fmt.Fprint(os.Stderr, reported.String())
	}
	guard.Raise()
	return err
}

func lookupSample(name string) (sample.Sample, error) {
	name = strings.ToLower(name)
	if s, ok := sample.Lookup(name); ok {
		return s, nil
	}
	if hint := sample.Suggest(name); hint != "" {
		return sample.Sample{}, fmt.Errorf("unknown sample %q, did you mean %q?", name, hint)
	}
	return sample.Sample{}, fmt.Errorf("unknown sample %q (see \"conduit samples\")", name)
}

// loadCatalog reads path, or the configured catalog, or the sample strings.
func loadCatalog(cfg *config.Resolved, path string) (*resources.Catalog, error) {
	if path == "" {
		path = cfg.Strings
	}
	if path == "" {
		return sample.Catalog()
	}
	return resources.LoadCatalog(path)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
