// Package text renders dashboard snapshots as terminal tables.
package text

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ytget/homescreen/internal/dashboard"
	"github.com/ytget/homescreen/internal/model"
)

var _ dashboard.Surface = (*TextSurface)(nil)

// Column headers of the snapshot table
var Headers = []string{"#", "ID", "Title", "Span", "Column", "Width", "Height"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	altStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	numberStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

// TextSurface writes every published snapshot to w as a table
type TextSurface struct {
	w io.Writer

	published int
}

// NewTextSurface creates a surface writing to w
func NewTextSurface(w io.Writer) *TextSurface {
	return &TextSurface{w: w}
}

// Publish renders the snapshot and writes it followed by a newline
func (s *TextSurface) Publish(snapshot []model.Card) {
	s.published++
	if _, err := fmt.Fprintln(s.w, Render(snapshot)); err != nil {
		log.Printf("Failed to write snapshot: %v", err)
	}
}

// Published returns how many snapshots were written
func (s *TextSurface) Published() int {
	return s.published
}

// Render formats a snapshot as a bordered table, one row per card in order
func Render(snapshot []model.Card) string {
	if len(snapshot) == 0 {
		return emptyStyle.Render("(no cards)")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col >= 5:
				return numberStyle
			case row%2 == 1:
				return altStyle
			default:
				return cellStyle
			}
		}).
		Headers(Headers...)

	for i, card := range snapshot {
		t.Row(
			strconv.Itoa(i),
			card.ID,
			card.Title(),
			card.Span(),
			model.ColumnSpanFor(card.CellWidth).String(),
			formatPixels(card.Width),
			formatPixels(card.Height),
		)
	}
	return t.String()
}

// formatPixels drops the fraction when the value is integral
func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
