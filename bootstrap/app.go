package bootstrap

import (
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
)

type release struct {
	name string
	fn   func()
}

// App opens the window, creates the instance and polls events until the
// window is closed.
type App struct {
	cfg        Config
	logger     *slog.Logger
	openWindow WindowOpener
	newLoader  func(procAddr unsafe.Pointer) (Loader, error)
	onPhase    func(Phase)

	phase    Phase
	window   Window
	instance Instance
	releases []release

	iterations int
}

func NewApp(cfg Config, openWindow WindowOpener, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:        cfg,
		logger:     logger,
		openWindow: openWindow,
		newLoader: func(procAddr unsafe.Pointer) (Loader, error) {
			return NewLoader(procAddr)
		},
	}
}

func (app *App) Phase() Phase {
	return app.phase
}

// Iterations is the number of completed poll-loop iterations.
func (app *App) Iterations() int {
	return app.iterations
}

// Run drives the application through its whole lifecycle. Anything acquired
// is released before Run returns, instance first.
func (app *App) Run() error {
	if app.phase != Uninitialized {
		return errors.Newf("app already ran: phase %s", app.phase)
	}

	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.cleanup()

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *App) initWindow() error {
	window, err := app.openWindow(app.cfg.Window)
	if err != nil {
		return errors.Wrap(err, "initWindow")
	}
	if window == nil {
		return WindowCreationError(nil, "initWindow: no window returned")
	}

	app.window = window
	app.acquired("window", window.Shutdown)
	app.setPhase(WindowReady)
	return nil
}

func (app *App) initVulkan() error {
	loader, err := app.newLoader(app.window.InstanceProcAddr())
	if err != nil {
		return errors.Wrap(err, "initVulkan")
	}

	builder := NewInstanceBuilder(loader, app.window, app.logger)
	instance, err := builder.CreateInstance(app.cfg.Instance)
	if err != nil {
		return errors.Wrap(err, "initVulkan")
	}

	app.instance = instance
	app.acquired("instance", instance.Destroy)
	app.setPhase(InstanceReady)
	return nil
}

func (app *App) mainLoop() error {
	app.setPhase(Running)

	start := hrtime.Now()
	for !app.window.ShouldClose() {
		app.window.PollEvents()
		app.iterations++
	}

	app.logger.Info("window closed", "iterations", app.iterations, "elapsed", hrtime.Since(start))
	return nil
}

func (app *App) acquired(name string, fn func()) {
	app.releases = append(app.releases, release{name: name, fn: fn})
}

// cleanup releases in reverse order of acquisition.
func (app *App) cleanup() {
	app.setPhase(ShuttingDown)

	for i := len(app.releases) - 1; i >= 0; i-- {
		r := app.releases[i]
		app.logger.Debug("releasing", "resource", r.name)
		r.fn()
	}
	app.releases = nil
	app.instance = nil
	app.window = nil

	app.setPhase(Terminated)
}

func (app *App) setPhase(p Phase) {
	if p <= app.phase {
		return
	}
	app.logger.Debug("phase", "from", app.phase, "to", p)
	app.phase = p
	if app.onPhase != nil {
		app.onPhase(p)
	}
}
