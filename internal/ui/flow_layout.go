package ui

import (
	"fyne.io/fyne/v2"
)

// FlowLayout places objects left to right at their minimum size and wraps to a
// new row when the next object does not fit. Rows are separated by the same
// gutter as columns; a row is as tall as its tallest object.
type FlowLayout struct {
	Gutter float32

	// width of the last Layout call, used to report a matching MinSize
	lastWidth float32
}

// NewFlowLayout creates a flow layout with the given gutter
func NewFlowLayout(gutter float32) *FlowLayout {
	if gutter < 0 {
		gutter = 0
	}
	return &FlowLayout{Gutter: gutter}
}

// Layout positions and sizes every visible object
func (f *FlowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	f.lastWidth = containerSize.Width
	for _, row := range f.rows(objects, containerSize.Width) {
		for _, cell := range row.cells {
			cell.obj.Move(fyne.NewPos(cell.x, row.y))
			cell.obj.Resize(cell.size)
		}
	}
}

// MinSize returns the widest object and the stacked height of all rows at the
// last laid out width
func (f *FlowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		if w := obj.MinSize().Width; w > width {
			width = w
		}
	}

	rows := f.rows(objects, f.lastWidth)
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		height = last.y + last.height
	}
	return fyne.NewSize(width, height)
}

type flowCell struct {
	obj  fyne.CanvasObject
	x    float32
	size fyne.Size
}

type flowRow struct {
	y      float32
	height float32
	cells  []flowCell
}

// rows splits visible objects into rows that fit within width. A width of 0
// places one object per row.
func (f *FlowLayout) rows(objects []fyne.CanvasObject, width float32) []flowRow {
	var rows []flowRow
	var current flowRow
	var x float32

	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size := obj.MinSize()

		if len(current.cells) > 0 && x+size.Width > width {
			rows = append(rows, current)
			current = flowRow{y: current.y + current.height + f.Gutter}
			x = 0
		}

		current.cells = append(current.cells, flowCell{obj: obj, x: x, size: size})
		if size.Height > current.height {
			current.height = size.Height
		}
		x += size.Width + f.Gutter
	}

	if len(current.cells) > 0 {
		rows = append(rows, current)
	}
	return rows
}
