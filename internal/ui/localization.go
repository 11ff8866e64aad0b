package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLanguage        = "language"
	KeyView            = "view"
	KeyClear           = "clear"
	KeyReloadSession   = "reload_session"
	KeyEmptyDashboard  = "empty_dashboard"
	KeyCards           = "cards"
	KeySessionLoaded   = "session_loaded"
	KeySessionError    = "session_error"
	KeySessionDisabled = "session_disabled"
	KeyDashboardClear  = "dashboard_cleared"
	KeyFullscreen      = "fullscreen"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves the OS locale and
// unknown languages leave the current one in place.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage maps the OS locale ("pt-BR", "ru_RU") to a language code
func systemLanguage() string {
	locale := strings.ToLower(lang.SystemLocale().LanguageString())
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return "en"
	}
	return locale
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Home",
		KeyLanguage:        "Language",
		KeyView:            "View",
		KeyClear:           "Clear dashboard",
		KeyReloadSession:   "Reload session",
		KeyEmptyDashboard:  "No cards yet",
		KeyCards:           "Cards",
		KeySessionLoaded:   "Session loaded",
		KeySessionError:    "Session error",
		KeySessionDisabled: "No session file configured",
		KeyDashboardClear:  "Dashboard cleared",
		KeyFullscreen:      "Fullscreen",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Главная",
		KeyLanguage:        "Язык",
		KeyView:            "Вид",
		KeyClear:           "Очистить",
		KeyReloadSession:   "Перезагрузить сессию",
		KeyEmptyDashboard:  "Карточек пока нет",
		KeyCards:           "Карточки",
		KeySessionLoaded:   "Сессия загружена",
		KeySessionError:    "Ошибка сессии",
		KeySessionDisabled: "Файл сессии не задан",
		KeyDashboardClear:  "Панель очищена",
		KeyFullscreen:      "Полный экран",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Início",
		KeyLanguage:        "Idioma",
		KeyView:            "Exibir",
		KeyClear:           "Limpar painel",
		KeyReloadSession:   "Recarregar sessão",
		KeyEmptyDashboard:  "Nenhum cartão ainda",
		KeyCards:           "Cartões",
		KeySessionLoaded:   "Sessão carregada",
		KeySessionError:    "Erro de sessão",
		KeySessionDisabled: "Nenhum arquivo de sessão configurado",
		KeyDashboardClear:  "Painel limpo",
		KeyFullscreen:      "Tela cheia",
	}
}
