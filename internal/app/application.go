package app

import (
	"runtime"

	"sales-forecaster/internal/config"
	"sales-forecaster/internal/gui"
	"sales-forecaster/internal/logger"
	"sales-forecaster/internal/pipeline"
	"sales-forecaster/internal/plot"
	"sales-forecaster/internal/session"
	"sales-forecaster/internal/shutdown"
	"sales-forecaster/internal/timing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Sales Forecasting App"
	AppID      = "com.salesforecaster.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	session     *session.Session
	handlers    *Handlers
	lifecycle   *Lifecycle
	shutdownMgr *shutdown.Manager
	timing      *timing.Tracker
	logger      logger.Logger
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"go_version":    runtime.Version(),
		"log_level":     cfg.LogLevel,
	})

	tracker := timing.NewTracker(log)
	sess := session.New(pipeline.NewLoader(log, tracker), pipeline.NewSaver(log, tracker), log)
	guiManager := gui.NewManager(window, log)
	renderer := plot.NewRenderer(gui.PlotWidth, gui.PlotHeight)
	lifecycle := NewLifecycle(sess, guiManager, log)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		session:     sess,
		handlers:    NewHandlers(sess, guiManager, renderer, log),
		lifecycle:   lifecycle,
		shutdownMgr: shutdown.NewManager(log),
		timing:      tracker,
		logger:      log,
	}

	application.setupHandlers()
	application.shutdownMgr.Register(shutdown.Func(application.quit))
	application.shutdownMgr.Register(lifecycle)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"session_id": sess.ID(),
	})
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetUploadHandler(a.handlers.HandleUpload)
	a.guiManager.SetClearHandler(a.handlers.HandleClear)
	a.guiManager.SetForecastHandler(a.handlers.HandleForecast)
	a.guiManager.SetExportHandler(a.handlers.HandleExport)
}

// quit asks the Fyne loop to stop; it may be called off the event goroutine.
func (a *Application) quit() {
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.shutdownMgr.Listen()

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdownMgr.Stop()
	a.lifecycle.Shutdown()
	a.logTimings()
	return nil
}

func (a *Application) logTimings() {
	fields := make(map[string]interface{})
	for _, op := range []string{"load_csv", "load_xlsx", "save_csv"} {
		if n := len(a.timing.GetTimings(op)); n > 0 {
			fields[op+"_count"] = n
			fields[op+"_avg_ms"] = a.timing.GetAverageTime(op).Milliseconds()
		}
	}
	if len(fields) > 0 {
		a.logger.Debug("Application", "file operation timings", fields)
	}
}
