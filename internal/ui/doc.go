package ui

// Package ui contains the Fyne user interface of the application: a single
// screen that shows a spinner while characters load, a fixed error message
// when they cannot be loaded, or a header followed by one card per character.
// Rendering is a pure function of model.DisplayState. All UI strings are
// localized via Localization.
