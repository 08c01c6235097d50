package main

import (
	"runtime"

	"person-roster/internal/config"
	"person-roster/internal/controllers"
	"person-roster/internal/logger"
	"person-roster/internal/services"
	"person-roster/internal/shutdown"
	"person-roster/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application wires the roster MVC tree into a Fyne app
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller    *controllers.MainController
	view          *views.MainView
	rosterService *services.RosterService

	shutdown *shutdown.Manager
}

// NewApplication builds every component from the resolved configuration
func NewApplication(cfg config.Config) (*Application, error) {
	appLogger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	appLogger.Info("Application", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.Log.Level,
		"sample_max": cfg.Sample.Max,
		"seeded":     cfg.Sample.Seed != 0,
	})

	rosterService := services.NewRosterService(appLogger, services.RosterOptions{
		SampleMax: cfg.Sample.Max,
		Seed:      cfg.Sample.Seed,
	})
	if cfg.Sample.Enabled {
		rosterService.Seed()
	}

	mainController := controllers.NewMainController(rosterService, appLogger)
	mainView := views.NewMainView(window)
	mainController.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:       fyneApp,
		window:        window,
		logger:        appLogger,
		controller:    mainController,
		view:          mainView,
		rosterService: rosterService,
		shutdown:      shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.view.ShowConfirm("Exit", "Are you sure you want to exit?", func(confirmed bool) {
			if confirmed {
				a.shutdown.Shutdown()
				a.window.Close()
			}
		})
	})
}
