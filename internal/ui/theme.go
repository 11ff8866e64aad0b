package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Card surface colors
const (
	ColorNameCard       fyne.ThemeColorName = "homeCard"
	ColorNameCardStroke fyne.ThemeColorName = "homeCardStroke"
)

// HomeTheme is a dark-first theme for the home screen with larger text for
// viewing at a distance
type HomeTheme struct{}

// NewHomeTheme creates a new home screen theme
func NewHomeTheme() fyne.Theme {
	return &HomeTheme{}
}

// Color returns theme colors
func (t *HomeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameCard:
		if variant == theme.VariantLight {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 34, G: 38, B: 46, A: 255}
	case ColorNameCardStroke:
		if variant == theme.VariantLight {
			return color.RGBA{R: 210, G: 214, B: 220, A: 255}
		}
		return color.RGBA{R: 58, G: 64, B: 76, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 33, G: 150, B: 243, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 240, G: 242, B: 245, A: 255}
		}
		return color.RGBA{R: 16, G: 18, B: 22, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 33, G: 33, B: 33, A: 255}
		}
		return color.RGBA{R: 236, G: 239, B: 244, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *HomeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *HomeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *HomeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return CardCornerRadius
	}

	return theme.DefaultTheme().Size(name)
}
