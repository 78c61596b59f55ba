package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"souffleur/internal/constants"
	"souffleur/internal/debuglog"
	"souffleur/internal/dialogs"
	"souffleur/internal/platform"
	"souffleur/internal/process"
	"souffleur/internal/settings"
	"souffleur/ui"
)

func main() {
	os.Exit(run())
}

// run starts the application and returns the exit code. Deferred cleanup,
// including closing the log file, happens before main exits.
func run() int {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Failed to initialize application: cannot determine executable path: %v", err)
		return 1
	}
	execDir := filepath.Dir(execPath)

	if logFile := openMainLog(execDir); logFile != nil {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
		defer func() {
			log.SetOutput(os.Stderr)
			debuglog.CloseWithLog("main log", logFile)
		}()
	}

	s, settingsErr := settings.Load(platform.GetSettingsPath(execDir))
	debuglog.SetLevelFromConfig(s.LogLevel)
	log.Printf("Starting %s %s (port [%d, %d], strict=%v)", constants.AppName, constants.AppVersion, s.PortMin, s.PortMax, s.PortStrict)

	application := app.NewWithID(constants.AppID)
	window := application.NewWindow(constants.AppName)

	panel, err := ui.NewApp(window, s)
	if err != nil {
		log.Printf("Failed to initialize application: %v", err)
		return 1
	}
	window.SetContent(panel.GetContent())
	window.Resize(fyne.NewSize(600, 340))
	window.CenterOnScreen()

	if settingsErr != nil {
		log.Printf("Settings: %v (using defaults)", settingsErr)
		panel.ShowSettingsError(settingsErr)
	}
	checkOtherInstance(window)
	panel.RefreshLocal()

	window.ShowAndRun()
	log.Println("Application shutting down.")
	return 0
}

// openMainLog opens logs/souffleur.log next to the executable, or returns
// nil and keeps logging to stderr.
func openMainLog(execDir string) *os.File {
	if err := platform.EnsureDirectories(execDir); err != nil {
		log.Printf("openMainLog: cannot create logs directory: %v", err)
		return nil
	}
	f, err := debuglog.OpenFile(platform.GetMainLogPath(execDir))
	if err != nil {
		log.Printf("openMainLog: %v", err)
		return nil
	}
	return f
}

func checkOtherInstance(window fyne.Window) {
	p, found, err := process.OtherInstanceRunning()
	if err != nil {
		log.Printf("checkOtherInstance: error listing processes: %v", err)
		return
	}
	if found {
		log.Printf("checkOtherInstance: found %s (PID=%d)", p.Name, p.PID)
		dialogs.ShowInfo(window, "Information", "The application is already running. Use the existing instance or close it before starting a new one.")
	}
}
