package session

// Package session loads card decks from YAML session files and watches them
// for changes. Decks feed Dashboard.AddItemsFromSession; the watcher never
// touches the dashboard itself, it only reports freshly loaded cards.
