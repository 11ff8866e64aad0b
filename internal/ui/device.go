package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/homescreen/internal/config"
)

// DeviceUI answers device-dependent layout questions
type DeviceUI struct {
	app fyne.App
}

// NewDeviceUI creates a new device helper
func NewDeviceUI(app fyne.App) *DeviceUI {
	return &DeviceUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (d *DeviceUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// Spacing returns the card gutter for this device. Touch screens widen the
// stock gutter; any other configured value is kept as is.
func (d *DeviceUI) Spacing(configured float64) float64 {
	if d.IsMobileDevice() && configured == config.DefaultSpacing {
		return MobileSpacing
	}
	return configured
}
