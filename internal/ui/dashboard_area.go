package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/homescreen/internal/dashboard"
)

// DashboardArea hosts the card grid. It binds itself as the model's surface
// and reports its own size to the model as the viewport.
type DashboardArea struct {
	widget.BaseWidget

	board        dashboard.Dashboard
	surface      *BoundSurface
	localization *Localization

	flow    *FlowLayout
	grid    *fyne.Container
	scroll  *container.Scroll
	empty   *widget.Label
	views   map[string]*CardView
	lastVP  fyne.Size
	hasVP   bool
	onCount func(count int)
}

// NewDashboardArea creates the area and binds it to the board
func NewDashboardArea(board dashboard.Dashboard, spacing float32, localization *Localization) *DashboardArea {
	a := &DashboardArea{
		board:        board,
		surface:      NewBoundSurface(),
		localization: localization,
		flow:         NewFlowLayout(spacing),
		views:        make(map[string]*CardView),
	}
	a.grid = container.New(a.flow)
	a.scroll = container.NewVScroll(a.grid)
	a.empty = widget.NewLabelWithStyle(localization.GetText(KeyEmptyDashboard), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	a.ExtendBaseWidget(a)

	a.surface.Generation().AddListener(binding.NewDataListener(a.sync))
	board.SetSurface(a.surface)
	return a
}

// Surface returns the bound surface the model publishes to
func (a *DashboardArea) Surface() *BoundSurface {
	return a.surface
}

// SetOnCountChanged registers a callback invoked after each sync with the
// number of cards shown
func (a *DashboardArea) SetOnCountChanged(onCount func(count int)) {
	a.onCount = onCount
}

// RefreshTexts re-reads localized strings
func (a *DashboardArea) RefreshTexts() {
	a.empty.SetText(a.localization.GetText(KeyEmptyDashboard))
}

// sync rebuilds the grid from the bound snapshot. Views are reused by card
// id so unchanged cards keep their renderers.
func (a *DashboardArea) sync() {
	cards := a.surface.Cards()

	objects := make([]fyne.CanvasObject, 0, len(cards))
	seen := make(map[string]*CardView, len(cards))
	for _, card := range cards {
		view, ok := a.views[card.ID]
		if ok {
			view.SetCard(card)
		} else {
			view = NewCardView(card)
		}
		seen[card.ID] = view
		objects = append(objects, view)
	}
	a.views = seen

	a.grid.Objects = objects
	a.grid.Refresh()
	if len(cards) == 0 {
		a.empty.Show()
	} else {
		a.empty.Hide()
	}

	if a.onCount != nil {
		a.onCount(len(cards))
	}
}

// resize forwards changed viewport axes to the board. An axis that did not
// change is not reported, so a pure height change never recomputes widths.
func (a *DashboardArea) resize(size fyne.Size) {
	if !a.hasVP {
		a.hasVP = true
		a.lastVP = size
		log.Printf("Dashboard viewport %.0fx%.0f", size.Width, size.Height)
		a.board.SetViewport(float64(size.Width), float64(size.Height))
		return
	}

	if size.Width != a.lastVP.Width {
		a.lastVP.Width = size.Width
		a.board.SetWidth(float64(size.Width))
	}
	if size.Height != a.lastVP.Height {
		a.lastVP.Height = size.Height
		a.board.SetHeight(float64(size.Height))
	}
}

// CreateRenderer creates the widget renderer
func (a *DashboardArea) CreateRenderer() fyne.WidgetRenderer {
	return &dashboardAreaRenderer{area: a}
}

type dashboardAreaRenderer struct {
	area *DashboardArea
}

func (r *dashboardAreaRenderer) Layout(size fyne.Size) {
	r.area.resize(size)
	r.area.scroll.Resize(size)
	r.area.empty.Resize(size)
}

// MinSize is zero: the area takes whatever the window gives and the model
// sizes cards from that
func (r *dashboardAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *dashboardAreaRenderer) Refresh() {
	r.area.scroll.Refresh()
	r.area.empty.Refresh()
}

func (r *dashboardAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.area.scroll, r.area.empty}
}

func (r *dashboardAreaRenderer) Destroy() {}
