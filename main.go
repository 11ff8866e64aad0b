package main

import (
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/homescreen/internal/config"
	"github.com/ytget/homescreen/internal/dashboard"
	"github.com/ytget/homescreen/internal/platform"
	"github.com/ytget/homescreen/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.homescreen"
	AppName = "Home Screen"
)

func main() {
	configPath := flag.String("config", platform.DefaultConfigPath(), "path to config.toml")
	sessionPath := flag.String("session", "", "session deck to load (overrides config)")
	flag.Parse()

	fmt.Printf("%s v%s starting...\n", AppName, version)

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *sessionPath != "" {
		cfg.Session.Path = *sessionPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config %s: %v", *configPath, err)
	}

	if err := platform.CreateDirectoryIfNotExists(platform.ConfigDir()); err != nil {
		fmt.Printf("failed to ensure config dir: %v\n", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoResource)
	myApp.Settings().SetTheme(ui.NewHomeTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	width, height := config.NewSettings(myApp).GetWindowSize()
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	spacing := ui.NewDeviceUI(myApp).Spacing(cfg.Dashboard.Spacing)
	board := dashboard.NewModel(spacing)
	if cfg.Dashboard.Width > 0 || cfg.Dashboard.Height > 0 {
		board.SetViewport(cfg.Dashboard.Width, cfg.Dashboard.Height)
	}

	root := ui.NewRootUI(myWindow, myApp, board, cfg)

	if cfg.Session.Path != "" {
		if err := root.LoadSession(cfg.Session.Path); err != nil {
			log.Printf("Failed to load session %s: %v", cfg.Session.Path, err)
		}
		if cfg.Session.Watch {
			if err := root.WatchSession(cfg.Session.Debounce.Duration); err != nil {
				log.Printf("Session watching disabled: %v", err)
			}
		}
	}

	myWindow.ShowAndRun()
}
