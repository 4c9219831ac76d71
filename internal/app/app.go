// Package app wires the application together: configuration, shortcut
// registry, shell, scripting, and the event loop.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/config"
	"github.com/dshills/cutline/internal/script"
	"github.com/dshills/cutline/internal/shell"
	"github.com/dshills/cutline/internal/shortcut"
	"github.com/dshills/cutline/internal/ui"
	"github.com/dshills/cutline/internal/watch"
)

// Options configures the application from the command line.
type Options struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	// ScriptPath is a Lua script to run at startup.
	ScriptPath string

	// LayoutPath overrides the layout document from the config file.
	LayoutPath string

	// LogLevel is debug, info, warn, or error.
	LogLevel string

	// Debug forces debug logging.
	Debug bool
}

// Application owns the program's components and its event loop.
type Application struct {
	opts      Options
	cfg       config.Config
	logger    *Logger
	sessionID string

	registry *shortcut.Registry
	shell    *shell.Shell
	engine   *script.Engine
	watcher  *watch.PresetWatcher
	screen   ui.Screen

	mu       sync.Mutex
	running  bool
	quitting bool

	shutdownOnce sync.Once
}

// New builds the application from its options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	level := ParseLogLevel(cfg.General.LogLevel)
	if opts.LogLevel != "" {
		level = ParseLogLevel(opts.LogLevel)
	}
	if opts.Debug {
		level = LogLevelDebug
	}

	app := &Application{
		opts:      opts,
		cfg:       cfg,
		sessionID: uuid.NewString(),
	}
	app.logger = NewLogger(level).WithField("session", app.sessionID)

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap builds the registry, shell, scripting engine, and preset
// watcher.
func (app *Application) bootstrap() error {
	log := app.logger.WithComponent("bootstrap")

	app.registry = shortcut.NewRegistry()
	app.registry.SetPresetDir(app.cfg.Shortcuts.PresetDir)

	// Saved customizations are optional; a corrupt file must not stop
	// startup.
	if err := app.registry.LoadFile(app.cfg.Shortcuts.File); err != nil {
		log.Warn("ignoring saved shortcuts: %v",
			NewOperationError("load-shortcuts", app.cfg.Shortcuts.File, err))
	}

	layoutPath := app.cfg.Layout.File
	if app.opts.LayoutPath != "" {
		layoutPath = app.opts.LayoutPath
	}

	sh, err := shell.New(app.registry, shell.Options{
		LayoutPath:        layoutPath,
		OnQuit:            app.Quit,
		OnShortcutsClosed: app.saveShortcuts,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	app.shell = sh

	app.engine = script.NewEngine(sh, app.registry)

	app.startPresetWatcher()

	log.Info("application ready")
	return nil
}

// startPresetWatcher watches the preset directory. The directory is
// created on first run; a watch failure degrades to manual refresh.
func (app *Application) startPresetWatcher() {
	log := app.logger.WithComponent("presets")

	dir := app.cfg.Shortcuts.PresetDir
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("preset dir unavailable: %v", err)
		return
	}

	w, err := watch.NewPresetWatcher(dir, func() {
		log.Debug("preset directory changed")
	})
	if err != nil {
		log.Warn("preset watch disabled: %v", err)
		return
	}
	app.watcher = w
}

// SetScreen attaches the screen the shell renders to. Must be called
// before Run.
func (app *Application) SetScreen(s ui.Screen) {
	app.screen = s
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Registry returns the shortcut registry.
func (app *Application) Registry() *shortcut.Registry {
	return app.registry
}

// Shell returns the shell.
func (app *Application) Shell() *shell.Shell {
	return app.shell
}

// Scripts returns the Lua engine.
func (app *Application) Scripts() *script.Engine {
	return app.engine
}

// Run initializes the screen and drives the event loop until quit.
// Returns ErrQuit on a normal exit.
func (app *Application) Run() error {
	app.mu.Lock()
	if app.running {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	if app.screen == nil {
		app.mu.Unlock()
		return ErrNoScreen
	}
	app.running = true
	app.mu.Unlock()

	if err := app.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	defer app.screen.Fini()

	width, height := app.screen.Size()
	app.shell.Window().Resize(width, height)

	if app.opts.ScriptPath != "" {
		if err := app.engine.DoFile(app.opts.ScriptPath); err != nil {
			app.logger.WithComponent("script").Error("startup script: %v", err)
		}
	}

	return app.eventLoop()
}

// eventLoop is the single goroutine that owns all widgets.
func (app *Application) eventLoop() error {
	for {
		app.draw()

		ev := app.screen.PollEvent()
		if ev.Type == ui.EventNone {
			// Screen finalized underneath us.
			return ErrQuit
		}

		app.shell.HandleEvent(ev)

		app.mu.Lock()
		quitting := app.quitting
		app.mu.Unlock()
		if quitting {
			return ErrQuit
		}
	}
}

func (app *Application) draw() {
	app.screen.Clear()
	app.shell.Draw(app.screen)
	app.screen.Show()
}

// Quit requests a normal exit. Safe to call from shell callbacks and
// other goroutines; a synthetic event wakes the loop if it is blocked
// polling.
func (app *Application) Quit() {
	app.mu.Lock()
	app.quitting = true
	running := app.running
	app.mu.Unlock()

	if running && app.screen != nil {
		width, height := app.screen.Size()
		app.screen.PostEvent(ui.ResizeEvent(width, height))
	}
}

// saveShortcuts persists registry customizations after the shortcut
// editor closes.
func (app *Application) saveShortcuts() {
	path := app.cfg.Shortcuts.File
	if path == "" {
		return
	}
	if err := app.registry.Save(path); err != nil {
		app.logger.WithComponent("shortcuts").Error("save: %v",
			NewOperationError("save-shortcuts", path, err))
		return
	}
	app.logger.WithComponent("shortcuts").Debug("saved %s", path)
}

// Shutdown releases resources. Safe to call more than once and from a
// signal handler goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.Quit()
		app.saveShortcuts()

		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		if app.engine != nil {
			app.engine.Close()
		}
		app.logger.Info("shutdown complete")
	})
}
