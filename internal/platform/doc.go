package platform

// Package platform contains OS integration: where the home screen keeps its
// configuration and session decks on desktop, Linux devices and Android.
