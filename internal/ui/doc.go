package ui

// Package ui contains the Fyne home screen. It binds the dashboard layout model
// to a data-bound card surface, forwards window resizes to the model as
// viewport changes and feeds session decks into it. All UI strings are
// localized via Localization.
