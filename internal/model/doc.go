package model

// Package model defines the home screen's domain data structures: dashboard
// cards and the grid-span vocabulary used to size them. Structures are
// designed for direct binding in the UI and are copied, not shared, when
// handed to a display surface.
