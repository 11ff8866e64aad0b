package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "homescreen.png"
)

//go:embed homescreen.png
var logoPNG []byte

// LogoResource is the application icon
var LogoResource = fyne.NewStaticResource(AppIcon, logoPNG)
