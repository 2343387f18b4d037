package config

import (
	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
	KeyLogLevel = "log_level"
)

// Default values
const (
	DefaultLanguage = "es"
	DefaultLogLevel = "info"
)

// Settings gives read-only access to application configuration.
// Values come from Fyne preferences with fallbacks and are never written back.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings reader
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language, falling back to Spanish
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// GetLogLevel returns the configured log level; unparsable values fall back to info
func (s *Settings) GetLogLevel() logrus.Level {
	raw := s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}
