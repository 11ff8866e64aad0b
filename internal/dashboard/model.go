package dashboard

import (
	"errors"
	"fmt"
	"log"

	"github.com/ytget/homescreen/internal/model"
)

// ErrIndexOutOfRange is returned by index-based access outside [0, count).
var ErrIndexOutOfRange = errors.New("card index out of range")

var _ Dashboard = (*Model)(nil)

// Model owns the ordered card collection, the viewport and the gutter.
type Model struct {
	cards   []model.Card
	ids     map[string]struct{}
	width   float64
	height  float64
	spacing float64
	surface Surface
}

// NewModel creates an empty dashboard with a fixed gutter. The gutter is used
// as given; config.Validate rejects negative values before it gets here.
func NewModel(spacing float64) *Model {
	return &Model{
		ids:     make(map[string]struct{}),
		spacing: spacing,
	}
}

// SetSurface binds the display surface. The current snapshot is published
// immediately so the surface starts consistent.
func (m *Model) SetSurface(surface Surface) {
	m.surface = surface
	m.publish()
}

// Viewport returns the current available width and height
func (m *Model) Viewport() (float64, float64) {
	return m.width, m.height
}

// Spacing returns the gutter subtracted from every dimension
func (m *Model) Spacing() float64 {
	return m.spacing
}

// SetWidth stores the available width and resizes every card horizontally
func (m *Model) SetWidth(width float64) {
	m.width = width
	m.relayoutWidth()
	m.publish()
}

// SetHeight stores the available height and resizes every card vertically
func (m *Model) SetHeight(height float64) {
	m.height = height
	m.relayoutHeight()
	m.publish()
}

// SetViewport updates both axes and publishes once
func (m *Model) SetViewport(width, height float64) {
	m.width = width
	m.height = height
	m.relayoutWidth()
	m.relayoutHeight()
	m.publish()
}

// AddItem appends a card sized for the current viewport. A card whose id is
// already present is skipped and false is returned.
func (m *Model) AddItem(card model.Card) bool {
	if !m.add(card) {
		return false
	}
	m.publish()
	return true
}

// AddItemsFromSession adds cards in order, skipping duplicates one by one,
// and returns how many were added. Each accepted card is published the same
// way a single AddItem would be.
func (m *Model) AddItemsFromSession(cards []model.Card) int {
	if len(cards) == 0 {
		return 0
	}

	added := 0
	for _, card := range cards {
		if m.AddItem(card) {
			added++
		}
	}
	return added
}

// GetItem returns a copy of the card at index
func (m *Model) GetItem(index int) (model.Card, error) {
	if err := m.checkIndex(index); err != nil {
		return model.Card{}, err
	}
	return m.cards[index].Clone(), nil
}

// GetItemCount returns the number of cards
func (m *Model) GetItemCount() int {
	return len(m.cards)
}

// RemoveItem deletes the card at index, shifting later cards left
func (m *Model) RemoveItem(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.removeAt(index)
	m.publish()
	return nil
}

// RemoveItemByID deletes the card with the given id. Unknown ids are a no-op.
func (m *Model) RemoveItemByID(id string) bool {
	if _, exists := m.ids[id]; !exists {
		return false
	}
	for i := range m.cards {
		if m.cards[i].ID == id {
			m.removeAt(i)
			m.publish()
			return true
		}
	}
	return false
}

// Clear removes every card
func (m *Model) Clear() {
	m.cards = nil
	m.ids = make(map[string]struct{})
	m.publish()
}

// Snapshot returns a deep copy of the collection in render order
func (m *Model) Snapshot() []model.Card {
	snapshot := make([]model.Card, len(m.cards))
	for i, card := range m.cards {
		snapshot[i] = card.Clone()
	}
	return snapshot
}

func (m *Model) add(card model.Card) bool {
	if _, exists := m.ids[card.ID]; exists {
		log.Printf("Card %s already on dashboard, skipping", card.ID)
		return false
	}

	card = card.Clone()
	card.Width = WidthFor(m.width, m.spacing, card.CellWidth)
	card.Height = HeightFor(m.height, m.spacing, card.CellHeight)

	m.cards = append(m.cards, card)
	m.ids[card.ID] = struct{}{}
	return true
}

func (m *Model) removeAt(index int) {
	delete(m.ids, m.cards[index].ID)
	m.cards = append(m.cards[:index], m.cards[index+1:]...)
}

func (m *Model) relayoutWidth() {
	for i := range m.cards {
		m.cards[i].Width = WidthFor(m.width, m.spacing, m.cards[i].CellWidth)
	}
}

func (m *Model) relayoutHeight() {
	for i := range m.cards {
		m.cards[i].Height = HeightFor(m.height, m.spacing, m.cards[i].CellHeight)
	}
}

func (m *Model) checkIndex(index int) error {
	if index < 0 || index >= len(m.cards) {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(m.cards))
	}
	return nil
}

// publish hands a fresh snapshot to the surface; it is never patched later
func (m *Model) publish() {
	if m.surface == nil {
		return
	}
	m.surface.Publish(m.Snapshot())
}
