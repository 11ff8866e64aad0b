package model

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// CardIDPrefix prefixes every generated card id
const CardIDPrefix = "card-"

// PayloadTitleKey is the payload field surfaces use as a card caption
const PayloadTitleKey = "title"

// Card represents a single dashboard widget entry
type Card struct {
	ID         string
	CellWidth  int            // column span, nominally 1..10
	CellHeight int            // row span, nominally 1..10
	Width      float64        // derived pixel width, rewritten on every resize
	Height     float64        // derived pixel height, rewritten on every resize
	Payload    map[string]any // application fields, passed through untouched
}

// NewCard creates a card with a freshly generated id
func NewCard(cellWidth, cellHeight int) Card {
	return Card{
		ID:         GenerateCardID(),
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// GenerateCardID generates a unique card id using UUID v7 so generated ids
// sort in creation order
func GenerateCardID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(CardIDPrefix+"%d", time.Now().UnixNano())
	}
	return CardIDPrefix + id.String()
}

// Clone returns a copy of the card that shares no payload map with the original
func (c Card) Clone() Card {
	out := c
	if c.Payload != nil {
		out.Payload = maps.Clone(c.Payload)
	}
	return out
}

// Title returns the payload title if present, the id otherwise
func (c Card) Title() string {
	if title, ok := c.Payload[PayloadTitleKey].(string); ok && title != "" {
		return title
	}
	return c.ID
}

// Span returns the grid span formatted as WxH
func (c Card) Span() string {
	return fmt.Sprintf("%dx%d", c.CellWidth, c.CellHeight)
}
