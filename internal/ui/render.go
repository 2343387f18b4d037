package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-viewer/internal/model"
)

// View is the canvas tree produced for one display state
type View struct {
	Content fyne.CanvasObject

	kind    model.StateKind
	spinner *widget.Activity
	loading *canvas.Text
	message *widget.Label
	header  *fyne.Container
	cards   []*CharacterCard
	byKey   map[string]*CharacterCard
}

// Render maps a display state to its canvas tree. It performs no I/O: card
// images start loading once the cards are shown.
func Render(state model.DisplayState, localization *Localization) *View {
	switch state.Kind() {
	case model.StateReady:
		return renderReady(state.Characters(), localization)
	case model.StateError:
		return renderError(state.Message())
	default:
		return renderLoading(localization)
	}
}

// Kind returns the state the view was rendered from
func (v *View) Kind() model.StateKind {
	return v.kind
}

// Cards returns the rendered cards in list order
func (v *View) Cards() []*CharacterCard {
	return v.cards
}

// CardByKey returns the card rendered for the given character key
func (v *View) CardByKey(key string) (*CharacterCard, bool) {
	card, ok := v.byKey[key]
	return card, ok
}

// renderLoading shows a centered spinner with a static text
func renderLoading(localization *Localization) *View {
	spinner := widget.NewActivity()
	spinner.Start()

	text := canvas.NewText(localization.GetText(KeyLoading), ColorLoaderText)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = theme.TextSubHeadingSize()

	content := container.NewStack(
		canvas.NewRectangle(ColorLoaderBackground),
		container.NewCenter(container.NewVBox(spinner, text)),
	)

	return &View{
		Content: content,
		kind:    model.StateLoading,
		spinner: spinner,
		loading: text,
	}
}

// renderError shows the stored message, centered and styled
func renderError(message string) *View {
	text := widget.NewLabel(message)
	text.Alignment = fyne.TextAlignCenter
	text.Wrapping = fyne.TextWrapWord
	text.Importance = widget.DangerImportance

	content := container.NewStack(
		canvas.NewRectangle(ColorErrorBackground),
		container.NewPadded(container.NewVBox(layout.NewSpacer(), text, layout.NewSpacer())),
	)

	return &View{
		Content: content,
		kind:    model.StateError,
		message: text,
	}
}

// renderReady shows the header followed by a scrolling list of cards
func renderReady(characters []model.Character, localization *Localization) *View {
	v := &View{
		kind:  model.StateReady,
		cards: make([]*CharacterCard, 0, len(characters)),
		byKey: make(map[string]*CharacterCard, len(characters)),
	}

	items := make([]fyne.CanvasObject, 0, len(characters))
	for _, character := range characters {
		card := NewCharacterCard(character, localization)
		v.cards = append(v.cards, card)
		v.byKey[card.Key()] = card
		items = append(items, container.NewPadded(card))
	}

	v.header = newHeader(localization)
	list := container.NewVScroll(container.NewVBox(items...))

	v.Content = container.NewStack(
		canvas.NewRectangle(ColorPageBackground),
		container.NewBorder(container.NewPadded(v.header), nil, nil, nil, list),
	)
	return v
}

// newHeader builds the static header block
func newHeader(localization *Localization) *fyne.Container {
	title := widget.NewLabel(localization.GetText(KeyHeaderTitle))
	title.Alignment = fyne.TextAlignCenter
	title.SizeName = theme.SizeNameHeadingText
	title.TextStyle = fyne.TextStyle{Bold: true}

	text := widget.NewLabel(localization.GetText(KeyHeaderText))
	text.Alignment = fyne.TextAlignCenter
	text.Wrapping = fyne.TextWrapWord

	subtitle := widget.NewLabel(localization.GetText(KeyHeaderSubtitle))
	subtitle.Alignment = fyne.TextAlignCenter
	subtitle.TextStyle = fyne.TextStyle{Bold: true}
	subtitle.Wrapping = fyne.TextWrapWord

	background := canvas.NewRectangle(ColorHeaderBackground)
	background.CornerRadius = HeaderRadius

	return container.NewStack(background, container.NewPadded(container.NewVBox(title, text, subtitle)))
}
