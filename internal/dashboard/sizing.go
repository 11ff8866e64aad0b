package dashboard

import (
	"math"

	"github.com/ytget/homescreen/internal/model"
)

// WidthFor returns the pixel width of a card with the given column span.
// Spans fall into two buckets: half and full width. The result is rounded
// half up, so x.5 always rounds toward positive infinity.
func WidthFor(available, spacing float64, cellWidth int) float64 {
	span := model.ColumnSpanFor(cellWidth)
	return roundHalfUp(available*span.Fraction() - spacing)
}

// HeightFor returns the pixel height of a card with the given row span.
// Spans 1..10 map to tenths of the available height; anything else falls
// back to half the height. No rounding is applied.
func HeightFor(available, spacing float64, cellHeight int) float64 {
	if !model.ValidCellHeight(cellHeight) {
		cellHeight = model.DefaultCellHeight
	}
	return available*(float64(cellHeight)/10) - spacing
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
