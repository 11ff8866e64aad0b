package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/homescreen/internal/config"
	"github.com/ytget/homescreen/internal/dashboard"
	"github.com/ytget/homescreen/internal/model"
	"github.com/ytget/homescreen/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	board        dashboard.Dashboard
	settings     *config.Settings
	localization *Localization

	area        *DashboardArea
	countLabel  *widget.Label
	statusLabel *widget.Label

	sessionPath string
	watcher     *session.Watcher
	closed      bool
}

// NewRootUI creates and initializes the main UI. Values set in cfg.UI take
// precedence over stored preferences.
func NewRootUI(window fyne.Window, app fyne.App, board dashboard.Dashboard, cfg *config.Config) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	if cfg != nil && cfg.UI.Language != "" {
		localization.SetLanguage(cfg.UI.Language)
	} else {
		localization.SetLanguage(settings.GetLanguage())
	}

	ui := &RootUI{
		window:       window,
		board:        board,
		settings:     settings,
		localization: localization,
	}
	if cfg != nil {
		ui.sessionPath = cfg.Session.Path
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LogoResource)
	if (cfg != nil && cfg.UI.Fullscreen) || settings.GetFullscreen() {
		window.SetFullScreen(true)
	}

	ui.setupUI()
	window.SetOnClosed(ui.Close)

	log.Printf("UI setup completed, spacing %.0f", board.Spacing())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.countLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusLabel.Hide()

	ui.area = NewDashboardArea(ui.board, float32(ui.board.Spacing()), ui.localization)
	ui.area.SetOnCountChanged(ui.updateCount)
	ui.updateCount(ui.board.GetItemCount())

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), ui.onReloadSession),
		widget.NewToolbarAction(theme.DeleteIcon(), ui.onClear),
		widget.NewToolbarSpacer(),
	)
	top := container.NewBorder(nil, nil, nil, ui.countLabel, toolbar)

	ui.window.SetContent(container.NewBorder(top, ui.statusLabel, nil, nil, ui.area))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	fullscreenItem := fyne.NewMenuItem(ui.localization.GetText(KeyFullscreen), ui.onToggleFullscreen)
	fullscreenItem.Checked = ui.window.FullScreen()

	viewMenu := fyne.NewMenu(ui.localization.GetText(KeyView),
		fyne.NewMenuItem(ui.localization.GetText(KeyReloadSession), ui.onReloadSession),
		fyne.NewMenuItem(ui.localization.GetText(KeyClear), ui.onClear),
		fyne.NewMenuItemSeparator(),
		fullscreenItem,
	)

	ui.window.SetMainMenu(fyne.NewMainMenu(viewMenu, languageMenu))
}

// LoadSession reads the deck at path and appends its cards. Cards already on
// the dashboard are skipped.
func (ui *RootUI) LoadSession(path string) error {
	cards, err := session.Load(path)
	if err != nil {
		ui.showStatus(ui.localization.GetText(KeySessionError) + ": " + err.Error())
		return err
	}
	ui.applyDeck(cards)
	return nil
}

// WatchSession reloads the configured deck whenever it changes on disk
func (ui *RootUI) WatchSession(debounce time.Duration) error {
	if ui.sessionPath == "" {
		return errors.New("no session path configured")
	}
	if ui.watcher != nil {
		return nil
	}

	watcher, err := session.NewWatcher(ui.sessionPath, debounce)
	if err != nil {
		return fmt.Errorf("watch session: %w", err)
	}

	// Watcher callbacks arrive on its own goroutine; the model is only touched
	// from the main goroutine.
	watcher.SetCallbacks(
		func(cards []model.Card) {
			fyne.Do(func() { ui.applyDeck(cards) })
		},
		func(err error) {
			fyne.Do(func() {
				ui.showStatus(ui.localization.GetText(KeySessionError) + ": " + err.Error())
			})
		},
	)
	watcher.Start()
	ui.watcher = watcher
	return nil
}

// Close stops the session watcher and remembers the window size
func (ui *RootUI) Close() {
	if ui.closed {
		return
	}
	ui.closed = true

	if ui.watcher != nil {
		if err := ui.watcher.Close(); err != nil {
			log.Printf("Failed to close session watcher: %v", err)
		}
	}

	if !ui.window.FullScreen() {
		size := ui.window.Canvas().Size()
		ui.settings.SetWindowSize(int(size.Width), int(size.Height))
	}
}

// Area returns the dashboard widget
func (ui *RootUI) Area() *DashboardArea {
	return ui.area
}

func (ui *RootUI) applyDeck(cards []model.Card) {
	added := ui.board.AddItemsFromSession(cards)
	log.Printf("Session applied: %d of %d cards added", added, len(cards))
	ui.showStatus(fmt.Sprintf("%s: +%d", ui.localization.GetText(KeySessionLoaded), added))
}

func (ui *RootUI) onReloadSession() {
	if ui.sessionPath == "" {
		ui.showStatus(ui.localization.GetText(KeySessionDisabled))
		return
	}
	ui.board.Clear()
	if err := ui.LoadSession(ui.sessionPath); err != nil {
		log.Printf("Failed to reload session %s: %v", ui.sessionPath, err)
	}
}

func (ui *RootUI) onClear() {
	ui.board.Clear()
	ui.showStatus(ui.localization.GetText(KeyDashboardClear))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

func (ui *RootUI) onToggleFullscreen() {
	fullscreen := !ui.window.FullScreen()
	ui.window.SetFullScreen(fullscreen)
	ui.settings.SetFullscreen(fullscreen)
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.area.RefreshTexts()
	ui.updateCount(ui.board.GetItemCount())
}

func (ui *RootUI) updateCount(count int) {
	ui.countLabel.SetText(IconCard + " " + ui.localization.GetText(KeyCards) + ": " + fmt.Sprintf(CardCountFormat, count))
}

func (ui *RootUI) showStatus(message string) {
	ui.statusLabel.SetText(message)
	ui.statusLabel.Show()
}
