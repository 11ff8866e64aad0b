package dashboard

// Package dashboard implements the home screen's layout model: an ordered,
// id-unique collection of cards whose pixel geometry is derived from grid
// spans and the current viewport. Every mutation ends by handing a fresh,
// complete snapshot of the collection to the bound display surface, so a
// surface never observes a half-applied change.
//
// The model is not safe for concurrent use. Callers serialize events onto a
// single goroutine (the UI thread).
