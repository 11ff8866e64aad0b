package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/homescreen/internal/model"
)

// CardView draws one dashboard card. Its minimum size is exactly the card's
// derived geometry, so a flow layout reproduces the model's sizing.
type CardView struct {
	widget.BaseWidget

	card model.Card
}

// NewCardView creates a view for the card
func NewCardView(card model.Card) *CardView {
	cv := &CardView{card: card}
	cv.ExtendBaseWidget(cv)
	return cv
}

// Card returns the card currently shown
func (cv *CardView) Card() model.Card {
	return cv.card
}

// SetCard replaces the shown card and refreshes the view
func (cv *CardView) SetCard(card model.Card) {
	cv.card = card
	cv.Refresh()
}

// CardSize converts the card geometry to a Fyne size. Negative geometry,
// which a gutter wider than the viewport produces, collapses to zero.
func CardSize(card model.Card) fyne.Size {
	return fyne.NewSize(nonNegative(card.Width), nonNegative(card.Height))
}

func nonNegative(v float64) float32 {
	if v < 0 {
		return 0
	}
	return float32(v)
}

// CreateRenderer creates the widget renderer
func (cv *CardView) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(ColorNameCard))
	background.CornerRadius = CardCornerRadius
	background.StrokeWidth = CardStrokeWidth

	title := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextSubHeadingSize()

	caption := canvas.NewText("", theme.Color(theme.ColorNameDisabled))
	caption.TextSize = theme.CaptionTextSize()

	r := &cardViewRenderer{
		view:       cv,
		background: background,
		title:      title,
		caption:    caption,
	}
	r.Refresh()
	return r
}

// cardViewRenderer renders the card view widget
type cardViewRenderer struct {
	view       *CardView
	background *canvas.Rectangle
	title      *canvas.Text
	caption    *canvas.Text
}

// Layout arranges the components
func (r *cardViewRenderer) Layout(size fyne.Size) {
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	r.title.Move(fyne.NewPos(CardTextInset, CardTextInset))
	r.title.Resize(fyne.NewSize(max(size.Width-2*CardTextInset, 0), r.title.MinSize().Height))

	captionHeight := r.caption.MinSize().Height
	r.caption.Move(fyne.NewPos(CardTextInset, size.Height-CardTextInset-captionHeight))
	r.caption.Resize(fyne.NewSize(max(size.Width-2*CardTextInset, 0), captionHeight))
	if size.Height < CardCaptionMinHeight {
		r.caption.Hide()
	} else {
		r.caption.Show()
	}
}

// MinSize returns the card geometry
func (r *cardViewRenderer) MinSize() fyne.Size {
	return CardSize(r.view.card)
}

// Refresh refreshes the renderer
func (r *cardViewRenderer) Refresh() {
	card := r.view.card

	r.background.FillColor = theme.Color(ColorNameCard)
	r.background.StrokeColor = theme.Color(ColorNameCardStroke)
	r.title.Text = card.Title()
	r.title.Color = theme.Color(theme.ColorNameForeground)
	r.caption.Text = card.Span() + MiddleDotSeparator + model.ColumnSpanFor(card.CellWidth).String()
	r.caption.Color = theme.Color(theme.ColorNameDisabled)

	r.Layout(r.view.Size())
	canvas.Refresh(r.view)
}

// Objects returns the canvas objects
func (r *cardViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.title, r.caption}
}

// Destroy cleans up the renderer
func (r *cardViewRenderer) Destroy() {}
