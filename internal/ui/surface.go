package ui

import (
	"log"

	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/homescreen/internal/dashboard"
	"github.com/ytget/homescreen/internal/model"
)

var _ dashboard.Surface = (*BoundSurface)(nil)

// BoundSurface publishes dashboard snapshots into a Fyne data binding. Every
// Publish replaces the list contents wholesale and then bumps the generation.
// List listeners only fire when the length changes, so widgets that must see
// every snapshot (a resize keeps the count) listen to the generation instead.
type BoundSurface struct {
	cards      binding.UntypedList
	generation binding.Int
}

// NewBoundSurface creates a surface over an empty list
func NewBoundSurface() *BoundSurface {
	return &BoundSurface{
		cards:      binding.NewUntypedList(),
		generation: binding.NewInt(),
	}
}

// Publish replaces the bound list with the snapshot
func (s *BoundSurface) Publish(snapshot []model.Card) {
	items := make([]interface{}, len(snapshot))
	for i, card := range snapshot {
		items[i] = card
	}
	if err := s.cards.Set(items); err != nil {
		log.Printf("Failed to publish %d cards: %v", len(snapshot), err)
		return
	}

	gen, _ := s.generation.Get()
	if err := s.generation.Set(gen + 1); err != nil {
		log.Printf("Failed to advance surface generation: %v", err)
	}
}

// Cards returns the current contents of the list
func (s *BoundSurface) Cards() []model.Card {
	items, err := s.cards.Get()
	if err != nil {
		log.Printf("Failed to read bound cards: %v", err)
		return nil
	}

	cards := make([]model.Card, 0, len(items))
	for _, item := range items {
		if card, ok := item.(model.Card); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Binding exposes the card list
func (s *BoundSurface) Binding() binding.UntypedList {
	return s.cards
}

// Generation is incremented once per Publish
func (s *BoundSurface) Generation() binding.Int {
	return s.generation
}
