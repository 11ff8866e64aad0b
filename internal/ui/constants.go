package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCard = "▦"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CardCountFormat    = "%d"
)

// Card view sizing
const (
	CardCornerRadius float32 = 8
	CardTextInset    float32 = 6
	CardStrokeWidth  float32 = 1

	// Below this height the span caption is hidden
	CardCaptionMinHeight float32 = 48
)

// Gutter used on touch devices in place of the stock configuration value
const MobileSpacing = 16.0
