package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/character-viewer/internal/config"
	"github.com/ytget/character-viewer/internal/fetch"
	"github.com/ytget/character-viewer/internal/session"
	"github.com/ytget/character-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.character-viewer"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(settings.GetLogLevel())
	l := logger.WithFields(logrus.Fields{
		"version": version,
		"session": uuid.NewString(),
	})
	l.Infof("Character viewer starting.")

	myApp.Settings().SetTheme(ui.NewCharacterTheme())

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	myWindow := myApp.NewWindow(localization.GetText(ui.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	fetchSvc := fetch.NewService(l.WithField("component", "fetch"))
	sess := session.New(fetchSvc, localization.GetText(ui.KeyLoadFailed), l.WithField("component", "session"))

	// Create and setup UI; the session is mounted here
	ui.NewRootUI(myWindow, sess, localization, l.WithField("component", "ui"))

	// Show and run
	myWindow.ShowAndRun()
	l.Infof("Character viewer stopped.")
}
