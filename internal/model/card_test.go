package model

import (
	"strings"
	"testing"
)

func TestNewCard(t *testing.T) {
	card := NewCard(3, 4)

	if !strings.HasPrefix(card.ID, CardIDPrefix) {
		t.Errorf("Expected ID with prefix %q, got %q", CardIDPrefix, card.ID)
	}
	if card.CellWidth != 3 || card.CellHeight != 4 {
		t.Errorf("Expected span 3x4, got %s", card.Span())
	}
	if card.Width != 0 || card.Height != 0 {
		t.Errorf("Expected zero geometry before layout, got %vx%v", card.Width, card.Height)
	}
}

func TestGenerateCardID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateCardID()
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestCard_Clone(t *testing.T) {
	original := Card{
		ID:         "weather",
		CellWidth:  3,
		CellHeight: 2,
		Width:      490,
		Height:     90,
		Payload:    map[string]any{"title": "Weather"},
	}

	clone := original.Clone()
	clone.Payload["title"] = "Changed"
	clone.Width = 1

	if original.Payload["title"] != "Weather" {
		t.Errorf("Clone shares payload with original: %v", original.Payload["title"])
	}
	if original.Width != 490 {
		t.Errorf("Clone shares geometry with original: %v", original.Width)
	}

	empty := Card{ID: "bare"}.Clone()
	if empty.Payload != nil {
		t.Error("Expected nil payload to stay nil")
	}
}

func TestCard_Title(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{ID: "a", Payload: map[string]any{"title": "Clock"}}, "Clock"},
		{Card{ID: "b", Payload: map[string]any{"title": ""}}, "b"},
		{Card{ID: "c", Payload: map[string]any{"title": 7}}, "c"},
		{Card{ID: "d"}, "d"},
	}

	for _, test := range tests {
		result := test.card.Title()
		if result != test.expected {
			t.Errorf("Title() for %s = %q, expected %q", test.card.ID, result, test.expected)
		}
	}
}

func TestCard_Span(t *testing.T) {
	card := Card{CellWidth: 7, CellHeight: 10}
	if card.Span() != "7x10" {
		t.Errorf("Span() = %s, expected 7x10", card.Span())
	}
}
