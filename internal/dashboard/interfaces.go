package dashboard

//go:generate mockgen -destination=mock_surface_test.go -package=dashboard github.com/ytget/homescreen/internal/dashboard Surface

import (
	"github.com/ytget/homescreen/internal/model"
)

// Surface receives the render snapshot after every mutation. The snapshot
// belongs to the surface once published; the model never touches it again.
type Surface interface {
	Publish(snapshot []model.Card)
}

// SurfaceFunc adapts a plain function to the Surface interface.
type SurfaceFunc func(snapshot []model.Card)

// Publish calls f(snapshot).
func (f SurfaceFunc) Publish(snapshot []model.Card) {
	f(snapshot)
}

// Dashboard defines the interface for the layout model.
type Dashboard interface {
	SetSurface(surface Surface)
	Viewport() (float64, float64)
	Spacing() float64

	// Viewport changes recompute one axis of every card
	SetWidth(width float64)
	SetHeight(height float64)
	SetViewport(width, height float64)

	AddItem(card model.Card) bool
	AddItemsFromSession(cards []model.Card) int
	GetItem(index int) (model.Card, error)
	GetItemCount() int
	RemoveItem(index int) error
	RemoveItemByID(id string) bool
	Clear()

	Snapshot() []model.Card
}
