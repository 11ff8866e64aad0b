package dashboard

import (
	"errors"
	"testing"

	"github.com/ytget/homescreen/internal/model"
)

// recordingSurface keeps every snapshot it was handed
type recordingSurface struct {
	snapshots [][]model.Card
}

func (r *recordingSurface) Publish(snapshot []model.Card) {
	r.snapshots = append(r.snapshots, snapshot)
}

func (r *recordingSurface) last() []model.Card {
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

func newTestModel(t *testing.T, width, height, spacing float64) (*Model, *recordingSurface) {
	t.Helper()
	m := NewModel(spacing)
	surface := &recordingSurface{}
	m.SetSurface(surface)
	m.SetWidth(width)
	m.SetHeight(height)
	surface.snapshots = nil
	return m, surface
}

func card(id string, cellWidth, cellHeight int) model.Card {
	return model.Card{ID: id, CellWidth: cellWidth, CellHeight: cellHeight}
}

func TestNewModel(t *testing.T) {
	m := NewModel(10)

	if m.Spacing() != 10 {
		t.Errorf("Expected spacing 10, got %v", m.Spacing())
	}
	if m.GetItemCount() != 0 {
		t.Errorf("Expected empty dashboard, got %d cards", m.GetItemCount())
	}
	if w, h := m.Viewport(); w != 0 || h != 0 {
		t.Errorf("Expected zero viewport, got %vx%v", w, h)
	}

	m = NewModel(-4)
	if m.Spacing() != -4 {
		t.Errorf("Spacing should be stored as given, got %v", m.Spacing())
	}
	m.SetViewport(100, 100)
	m.AddItem(card("a", 2, 10))
	if got, _ := m.GetItem(0); got.Width != 54 || got.Height != 104 {
		t.Errorf("Expected 54x104 with a -4 gutter, got %vx%v", got.Width, got.Height)
	}
}

func TestSetSurface_PublishesCurrentState(t *testing.T) {
	m := NewModel(10)
	m.AddItem(card("a", 1, 1))

	surface := &recordingSurface{}
	m.SetSurface(surface)

	if len(surface.snapshots) != 1 {
		t.Fatalf("Expected 1 publish on bind, got %d", len(surface.snapshots))
	}
	if len(surface.last()) != 1 || surface.last()[0].ID != "a" {
		t.Errorf("Expected snapshot with card a, got %+v", surface.last())
	}
}

func TestAddItem_ComputesGeometry(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)

	if !m.AddItem(card("1", 3, 2)) {
		t.Fatal("Expected card to be added")
	}

	got, err := m.GetItem(0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Width != 490 {
		t.Errorf("Expected width 490, got %v", got.Width)
	}
	if got.Height != 90 {
		t.Errorf("Expected height 90, got %v", got.Height)
	}
	if len(surface.snapshots) != 1 {
		t.Errorf("Expected 1 publish, got %d", len(surface.snapshots))
	}
}

func TestAddItem_DuplicateIsSkipped(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)

	if !m.AddItem(card("x", 3, 2)) {
		t.Fatal("Expected first card to be added")
	}
	if m.AddItem(card("x", 8, 8)) {
		t.Error("Expected duplicate card to be rejected")
	}

	if m.GetItemCount() != 1 {
		t.Errorf("Expected 1 card, got %d", m.GetItemCount())
	}
	got, _ := m.GetItem(0)
	if got.CellWidth != 3 {
		t.Errorf("Duplicate add replaced the original card: %+v", got)
	}
	if len(surface.snapshots) != 1 {
		t.Errorf("Expected duplicate add not to publish, got %d publishes", len(surface.snapshots))
	}
}

func TestAddItem_PreservesOrderAndPayload(t *testing.T) {
	m, _ := newTestModel(t, 1000, 500, 10)

	c := card("clock", 7, 3)
	c.Payload = map[string]any{"title": "Clock", "skill": "date-time"}
	m.AddItem(card("weather", 3, 4))
	m.AddItem(c)
	m.AddItem(card("news", 2, 2))

	expected := []string{"weather", "clock", "news"}
	snapshot := m.Snapshot()
	for i, id := range expected {
		if snapshot[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, snapshot[i].ID)
		}
	}
	if snapshot[1].Payload["skill"] != "date-time" {
		t.Errorf("Payload not passed through: %+v", snapshot[1].Payload)
	}

	// the caller's card is not the stored one
	c.Payload["skill"] = "changed"
	got, _ := m.GetItem(1)
	if got.Payload["skill"] != "date-time" {
		t.Errorf("Model shares payload with caller: %+v", got.Payload)
	}
}

func TestAddItemsFromSession(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("b", 1, 1))
	surface.snapshots = nil

	added := m.AddItemsFromSession([]model.Card{
		card("a", 1, 1),
		card("b", 1, 1),
		card("c", 9, 9),
		card("a", 2, 2),
	})

	if added != 2 {
		t.Errorf("Expected 2 cards added, got %d", added)
	}
	if m.GetItemCount() != 3 {
		t.Errorf("Expected 3 cards, got %d", m.GetItemCount())
	}

	order := []string{"b", "a", "c"}
	for i, id := range order {
		got, _ := m.GetItem(i)
		if got.ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, got.ID)
		}
	}
	if len(surface.last()) != m.GetItemCount() {
		t.Errorf("Snapshot length %d != count %d", len(surface.last()), m.GetItemCount())
	}
}

func TestAddItemsFromSession_Empty(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)

	if added := m.AddItemsFromSession(nil); added != 0 {
		t.Errorf("Expected 0 added, got %d", added)
	}
	if added := m.AddItemsFromSession([]model.Card{}); added != 0 {
		t.Errorf("Expected 0 added, got %d", added)
	}
	if len(surface.snapshots) != 0 {
		t.Errorf("Expected no publish for empty session, got %d", len(surface.snapshots))
	}
}

func TestUniqueness_AfterMixedAdds(t *testing.T) {
	m, _ := newTestModel(t, 640, 480, 4)

	ids := []string{"a", "b", "a", "c", "b", "d", "a"}
	for _, id := range ids {
		m.AddItem(card(id, 2, 2))
	}
	m.AddItemsFromSession([]model.Card{card("d", 1, 1), card("e", 1, 1), card("c", 1, 1)})

	seen := make(map[string]bool)
	for _, c := range m.Snapshot() {
		if seen[c.ID] {
			t.Errorf("Duplicate id %s in collection", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected 5 unique cards, got %d", len(seen))
	}
}

func TestSetWidth_RecomputesEveryCard(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("wide", 7, 3))
	m.AddItem(card("narrow", 2, 3))

	m.SetWidth(800)

	wide, _ := m.GetItem(0)
	if wide.Width != 790 {
		t.Errorf("Expected wide card width 790, got %v", wide.Width)
	}
	narrow, _ := m.GetItem(1)
	if narrow.Width != 390 {
		t.Errorf("Expected narrow card width 390, got %v", narrow.Width)
	}
	if narrow.Height != HeightFor(500, 10, 3) {
		t.Errorf("SetWidth changed height: %v", narrow.Height)
	}
	if w, _ := m.Viewport(); w != 800 {
		t.Errorf("Expected stored width 800, got %v", w)
	}
	if surface.last()[0].Width != 790 {
		t.Errorf("Published snapshot has stale width %v", surface.last()[0].Width)
	}
}

func TestSetHeight_RecomputesEveryCard(t *testing.T) {
	m, _ := newTestModel(t, 1000, 500, 10)
	for h := 0; h <= 11; h++ {
		m.AddItem(card(string(rune('a'+h)), 1, h))
	}

	m.SetHeight(1200)

	for i := 0; i < m.GetItemCount(); i++ {
		c, _ := m.GetItem(i)
		if c.Height != HeightFor(1200, 10, c.CellHeight) {
			t.Errorf("Card %s: height %v, expected %v", c.ID, c.Height, HeightFor(1200, 10, c.CellHeight))
		}
		if c.Width != WidthFor(1000, 10, c.CellWidth) {
			t.Errorf("SetHeight changed width of %s: %v", c.ID, c.Width)
		}
	}
}

func TestSetWidth_Idempotent(t *testing.T) {
	m, _ := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 7, 4))
	m.AddItem(card("b", 3, 11))

	m.SetWidth(1024)
	first := m.Snapshot()
	m.SetWidth(1024)
	second := m.Snapshot()

	for i := range first {
		if first[i].Width != second[i].Width || first[i].Height != second[i].Height {
			t.Errorf("Card %s changed on repeated SetWidth: %+v vs %+v", first[i].ID, first[i], second[i])
		}
	}
}

func TestSetViewport_PublishesOnce(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 6, 6))
	surface.snapshots = nil

	m.SetViewport(1920, 1080)

	if len(surface.snapshots) != 1 {
		t.Fatalf("Expected 1 publish, got %d", len(surface.snapshots))
	}
	got := surface.last()[0]
	if got.Width != WidthFor(1920, 10, 6) || got.Height != HeightFor(1080, 10, 6) {
		t.Errorf("Unexpected geometry %vx%v", got.Width, got.Height)
	}
}

func TestGetItem_OutOfRange(t *testing.T) {
	m, _ := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 1, 1))

	for _, index := range []int{-1, 1, 5} {
		_, err := m.GetItem(index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("GetItem(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
}

func TestGetItem_ReturnsCopy(t *testing.T) {
	m, _ := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 1, 1))

	got, _ := m.GetItem(0)
	got.Width = 1

	again, _ := m.GetItem(0)
	if again.Width == 1 {
		t.Error("GetItem exposed internal state")
	}
}

func TestRemoveItem(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItemsFromSession([]model.Card{card("a", 1, 1), card("b", 1, 1), card("c", 1, 1)})
	surface.snapshots = nil

	if err := m.RemoveItem(1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if m.GetItemCount() != 2 {
		t.Fatalf("Expected 2 cards, got %d", m.GetItemCount())
	}
	second, _ := m.GetItem(1)
	if second.ID != "c" {
		t.Errorf("Expected c to shift left, got %s", second.ID)
	}
	if len(surface.snapshots) != 1 || len(surface.last()) != 2 {
		t.Errorf("Expected one publish of 2 cards, got %d publishes", len(surface.snapshots))
	}

	// removed id can be added again
	if !m.AddItem(card("b", 1, 1)) {
		t.Error("Expected removed id to be accepted again")
	}
}

func TestRemoveItem_OutOfRange(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 1, 1))
	surface.snapshots = nil

	for _, index := range []int{-1, 1} {
		if err := m.RemoveItem(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveItem(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
	if m.GetItemCount() != 1 {
		t.Errorf("Expected collection unchanged, got %d cards", m.GetItemCount())
	}
	if len(surface.snapshots) != 0 {
		t.Errorf("Expected no publish on failed remove, got %d", len(surface.snapshots))
	}
}

func TestRemoveItemByID(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItemsFromSession([]model.Card{card("a", 1, 1), card("b", 1, 1), card("c", 1, 1)})
	surface.snapshots = nil

	if m.RemoveItemByID("missing") {
		t.Error("Expected unknown id to report false")
	}
	if m.GetItemCount() != 3 {
		t.Errorf("Expected 3 cards after unknown id, got %d", m.GetItemCount())
	}
	if len(surface.snapshots) != 0 {
		t.Errorf("Expected no publish for unknown id, got %d", len(surface.snapshots))
	}

	if !m.RemoveItemByID("a") {
		t.Error("Expected known id to be removed")
	}
	if m.GetItemCount() != 2 {
		t.Errorf("Expected 2 cards, got %d", m.GetItemCount())
	}
	first, _ := m.GetItem(0)
	if first.ID != "b" {
		t.Errorf("Expected b first, got %s", first.ID)
	}
	if len(surface.last()) != 2 {
		t.Errorf("Expected snapshot of 2 cards, got %d", len(surface.last()))
	}
}

func TestClear(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItemsFromSession([]model.Card{card("a", 1, 1), card("b", 1, 1)})

	m.Clear()

	if m.GetItemCount() != 0 {
		t.Errorf("Expected 0 cards, got %d", m.GetItemCount())
	}
	if surface.last() == nil || len(surface.last()) != 0 {
		t.Errorf("Expected an empty published snapshot, got %+v", surface.last())
	}
	if !m.AddItem(card("a", 1, 1)) {
		t.Error("Expected cleared id to be accepted again")
	}
}

func TestSnapshot_NotMutatedAfterPublish(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)
	m.AddItem(card("a", 7, 2))
	published := surface.last()

	m.SetWidth(400)
	m.AddItem(card("b", 1, 1))
	m.RemoveItemByID("a")

	if len(published) != 1 || published[0].ID != "a" || published[0].Width != 990 {
		t.Errorf("Published snapshot was mutated: %+v", published)
	}
}

func TestSnapshot_LengthMatchesCount(t *testing.T) {
	m, surface := newTestModel(t, 1000, 500, 10)

	steps := []func(){
		func() { m.AddItem(card("a", 1, 1)) },
		func() { m.AddItem(card("b", 6, 6)) },
		func() { m.SetWidth(300) },
		func() { m.SetHeight(200) },
		func() { _ = m.RemoveItem(0) },
		func() { m.AddItemsFromSession([]model.Card{card("c", 1, 1), card("d", 1, 1)}) },
		func() { m.RemoveItemByID("d") },
		func() { m.Clear() },
	}

	for i, step := range steps {
		step()
		if len(surface.last()) != m.GetItemCount() {
			t.Errorf("Step %d: snapshot length %d != count %d", i, len(surface.last()), m.GetItemCount())
		}
	}
}

func TestModel_WithoutSurface(t *testing.T) {
	m := NewModel(10)
	m.SetViewport(1000, 500)
	m.AddItem(card("a", 1, 1))
	m.Clear()

	if m.GetItemCount() != 0 {
		t.Errorf("Expected 0 cards, got %d", m.GetItemCount())
	}
}

func TestSurfaceFunc(t *testing.T) {
	var got []model.Card
	m := NewModel(0)
	m.SetSurface(SurfaceFunc(func(snapshot []model.Card) {
		got = snapshot
	}))

	m.AddItem(card("a", 1, 1))

	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("SurfaceFunc did not receive snapshot: %+v", got)
	}
}
