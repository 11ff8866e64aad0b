package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ytget/homescreen/internal/config"
	"github.com/ytget/homescreen/internal/dashboard"
	"github.com/ytget/homescreen/internal/platform"
	"github.com/ytget/homescreen/internal/session"
	"github.com/ytget/homescreen/internal/ui/text"
)

// Viewport used when neither the flags nor the config set one
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

func main() {
	configPath := flag.String("config", platform.DefaultConfigPath(), "path to config.toml")
	sessionPath := flag.String("session", "", "session deck to load (overrides config)")
	width := flag.Float64("width", 0, "viewport width in pixels (default: config, then 800)")
	height := flag.Float64("height", 0, "viewport height in pixels (default: config, then 480)")
	flag.Parse()

	if err := run(*configPath, *sessionPath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "homescreen-dump: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, sessionPath string, width, height float64) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}
	if sessionPath != "" {
		cfg.Session.Path = sessionPath
	}
	// The dump never watches, so a missing path is fine here
	cfg.Session.Watch = false
	if err := cfg.Validate(); err != nil {
		return err
	}

	width, height = viewport(cfg, width, height)

	cards, err := session.Load(cfg.Session.Path)
	if err != nil {
		return err
	}

	board := dashboard.NewModel(cfg.Dashboard.Spacing)
	board.SetViewport(width, height)
	added := board.AddItemsFromSession(cards)

	fmt.Printf("%s: %d cards (%d skipped), viewport %vx%v, spacing %v\n",
		cfg.Session.Path, added, len(cards)-added, width, height, cfg.Dashboard.Spacing)
	text.NewTextSurface(os.Stdout).Publish(board.Snapshot())
	return nil
}

// viewport picks each axis from the flags, then the config seed, then the default
func viewport(cfg *config.Config, width, height float64) (float64, float64) {
	return firstPositive(width, cfg.Dashboard.Width, DefaultWidth),
		firstPositive(height, cfg.Dashboard.Height, DefaultHeight)
}

// firstPositive returns the first value greater than zero
func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
