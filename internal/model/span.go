package model

// Grid span limits
const (
	// MaxHalfCellWidth is the widest column span that still renders as a half-width card
	MaxHalfCellWidth = 5

	// MinCellHeight and MaxCellHeight bound the row spans that map to tenths of the viewport
	MinCellHeight = 1
	MaxCellHeight = 10

	// DefaultCellHeight is the span used for any row span outside the valid range
	DefaultCellHeight = 5
)

// ColumnSpan is the horizontal bucket a card falls into
type ColumnSpan string

const (
	// ColumnSpanHalf takes half of the available width
	ColumnSpanHalf ColumnSpan = "half"

	// ColumnSpanFull takes the whole available width
	ColumnSpanFull ColumnSpan = "full"
)

// ColumnSpanFor maps a column span to its bucket. Every span up to
// MaxHalfCellWidth, including zero and negative spans, is half width.
func ColumnSpanFor(cellWidth int) ColumnSpan {
	if cellWidth <= MaxHalfCellWidth {
		return ColumnSpanHalf
	}
	return ColumnSpanFull
}

// String returns the string representation of ColumnSpan
func (cs ColumnSpan) String() string {
	return string(cs)
}

// IsFull returns true if the card spans the whole width
func (cs ColumnSpan) IsFull() bool {
	return cs == ColumnSpanFull
}

// Fraction returns the share of the available width the bucket occupies
func (cs ColumnSpan) Fraction() float64 {
	if cs.IsFull() {
		return 1
	}
	return 0.5
}

// ValidCellHeight reports whether a row span maps linearly to the viewport
func ValidCellHeight(cellHeight int) bool {
	return cellHeight >= MinCellHeight && cellHeight <= MaxCellHeight
}
