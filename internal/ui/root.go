package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/character-viewer/internal/model"
	"github.com/ytget/character-viewer/internal/session"
)

// RootUI binds the main window to a session and re-renders on state changes
type RootUI struct {
	window       fyne.Window
	session      *session.Session
	localization *Localization
	l            logrus.FieldLogger

	viewMutex sync.RWMutex
	view      *View
}

// NewRootUI renders the current state, then mounts the session so the
// characters are fetched once for the lifetime of the window.
func NewRootUI(window fyne.Window, sess *session.Session, localization *Localization, l logrus.FieldLogger) *RootUI {
	ui := &RootUI{
		window:       window,
		session:      sess,
		localization: localization,
		l:            l,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for the state transition
	sess.SetUpdateCallback(ui.onStateUpdate)

	ui.render(sess.State())
	sess.Mount(context.Background())

	ui.l.Debugf("UI setup completed.")
	return ui
}

// View returns the view currently shown in the window
func (ui *RootUI) View() *View {
	ui.viewMutex.RLock()
	defer ui.viewMutex.RUnlock()
	return ui.view
}

// onStateUpdate handles the transition published by the session.
// Widgets are only touched on the main goroutine.
func (ui *RootUI) onStateUpdate(state model.DisplayState) {
	ui.l.WithField("state", state.Kind().String()).Debugf("Display state changed.")
	fyne.Do(func() {
		ui.render(state)
	})
}

// render swaps the window content for the given state. The view is
// published only after the window has laid it out.
func (ui *RootUI) render(state model.DisplayState) {
	view := Render(state, ui.localization)
	ui.window.SetContent(view.Content)

	ui.viewMutex.Lock()
	ui.view = view
	ui.viewMutex.Unlock()
}
