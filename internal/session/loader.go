package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/homescreen/internal/model"
)

// Deck keys lifted into model.Card fields; every other key is payload
const (
	KeyID         = "id"
	KeyCellWidth  = "cellWidth"
	KeyCellHeight = "cellHeight"
)

// deckFile is the on-disk layout of a session deck
type deckFile struct {
	Cards []map[string]any `yaml:"cards"`
}

// Load reads a deck from path. A missing file is an empty deck.
func Load(path string) ([]model.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open session %s: %w", path, err)
	}
	defer f.Close()

	cards, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", path, err)
	}
	return cards, nil
}

// Parse decodes a deck. Cards without an id get a generated one.
func Parse(r io.Reader) ([]model.Card, error) {
	var deck deckFile
	if err := yaml.NewDecoder(r).Decode(&deck); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	cards := make([]model.Card, 0, len(deck.Cards))
	for i, entry := range deck.Cards {
		card, err := cardFromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func cardFromEntry(entry map[string]any) (model.Card, error) {
	var card model.Card

	switch id := entry[KeyID].(type) {
	case nil:
		card.ID = model.GenerateCardID()
	case string:
		if id == "" {
			card.ID = model.GenerateCardID()
		} else {
			card.ID = id
		}
	case int:
		card.ID = fmt.Sprintf("%d", id)
	default:
		return card, fmt.Errorf("unsupported id type %T", id)
	}

	width, err := spanValue(entry, KeyCellWidth)
	if err != nil {
		return card, err
	}
	// a fractional column span keeps its half/full bucket
	card.CellWidth = spanInt(math.Ceil(width))

	height, err := spanValue(entry, KeyCellHeight)
	if err != nil {
		return card, err
	}
	// a fractional row span is never valid; zero selects the default height.
	// NaN fails the comparison too.
	if height == math.Trunc(height) {
		card.CellHeight = spanInt(height)
	}

	for key, value := range entry {
		switch key {
		case KeyID, KeyCellWidth, KeyCellHeight:
			continue
		}
		if card.Payload == nil {
			card.Payload = make(map[string]any)
		}
		card.Payload[key] = value
	}
	return card, nil
}

// spanInt converts an integral span to int. NaN becomes zero and magnitudes
// beyond int32 saturate, so a huge span keeps its sign and bucket.
func spanInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// spanValue reads a numeric span. Missing spans are zero, which the sizing
// rules treat as half width and default height.
func spanValue(entry map[string]any, key string) (float64, error) {
	switch v := entry[key].(type) {
	case nil:
		return 0, nil
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}
