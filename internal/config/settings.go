package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyFullscreen   = "fullscreen"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 480
	DefaultFullscreen   = false
)

// Window size limits
const (
	MinWindowSize = 240
	MaxWindowSize = 7680
)

// Settings manages per-device UI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWindowSize returns the last window size
func (s *Settings) GetWindowSize() (int, int) {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return clampWindowSize(width), clampWindowSize(height)
}

// SetWindowSize remembers the window size for the next start
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampWindowSize(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampWindowSize(height))
}

// GetFullscreen returns whether the home screen starts fullscreen
func (s *Settings) GetFullscreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyFullscreen, DefaultFullscreen)
}

// SetFullscreen sets whether the home screen starts fullscreen
func (s *Settings) SetFullscreen(fullscreen bool) {
	s.app.Preferences().SetBool(KeyFullscreen, fullscreen)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampWindowSize(size int) int {
	if size < MinWindowSize {
		return MinWindowSize
	}
	if size > MaxWindowSize {
		return MaxWindowSize
	}
	return size
}
