package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/character-viewer/internal/model"
)

// CharacterCard renders one character: thumbnail on the left, fields on the right
type CharacterCard struct {
	widget.BaseWidget

	character    model.Character
	localization *Localization

	// Image source and its background load, started with the renderer
	imageURI  fyne.URI
	imageOnce sync.Once
	imageDone chan struct{}

	// UI components
	background   *canvas.Rectangle
	thumbnail    *canvas.Image
	nameLabel    *widget.Label
	statusLabel  *widget.Label
	speciesLabel *widget.Label
	genderLabel  *widget.Label
	idLabel      *widget.Label
	urlLabel     *widget.Label
}

// NewCharacterCard creates a new card for the given record
func NewCharacterCard(character model.Character, localization *Localization) *CharacterCard {
	cc := &CharacterCard{
		character:    character,
		localization: localization,
		imageURI:     parseImageURI(character.Image),
		imageDone:    make(chan struct{}),
	}
	cc.ExtendBaseWidget(cc)
	cc.createUI()
	return cc
}

// Key returns the list key of the card, the stringified character id
func (cc *CharacterCard) Key() string {
	return cc.character.Key()
}

// Character returns the record shown by the card
func (cc *CharacterCard) Character() model.Character {
	return cc.character
}

// ImageURI returns the thumbnail source, nil when the record has no usable image
func (cc *CharacterCard) ImageURI() fyne.URI {
	return cc.imageURI
}

// createUI creates the UI components
func (cc *CharacterCard) createUI() {
	c := cc.character

	cc.background = canvas.NewRectangle(ColorCardBackground)
	cc.background.CornerRadius = CardCornerRadius

	cc.thumbnail = &canvas.Image{
		FillMode:  canvas.ImageFillContain,
		ScaleMode: canvas.ImageScaleSmooth,
	}
	cc.thumbnail.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))

	cc.nameLabel = newFieldLabel(cc.field(KeyLabelName, c.Name))
	cc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	cc.statusLabel = newFieldLabel(cc.field(KeyLabelStatus, c.Status.String()))
	cc.speciesLabel = newFieldLabel(cc.field(KeyLabelSpecies, c.Species))
	cc.genderLabel = newFieldLabel(cc.field(KeyLabelGender, c.Gender))
	cc.idLabel = newFieldLabel(cc.field(KeyLabelID, c.Key()))

	// Laid out by hand so the label never grows past the card
	cc.urlLabel = widget.NewLabel(fitLines(cc.field(KeyLabelURL, c.URL), urlTextWidth(), URLMaxLines, measureText))
	cc.urlLabel.Wrapping = fyne.TextWrapOff
}

// newFieldLabel creates a word-wrapped label so long values do not widen the card
func newFieldLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// measureText reports the rendered width of body text under the current theme
func measureText(text string) float32 {
	return fyne.MeasureText(text, theme.TextSize(), fyne.TextStyle{}).Width
}

// field formats a labelled value
func (cc *CharacterCard) field(key, value string) string {
	return fmt.Sprintf("%s %s", cc.localization.GetText(key), value)
}

// parseImageURI parses the record image. An empty or unparsable value leaves
// the thumbnail as an empty box of the same size.
func parseImageURI(raw string) fyne.URI {
	if raw == "" {
		return nil
	}
	uri, err := storage.ParseURI(raw)
	if err != nil {
		fyne.LogError("Invalid image URI "+raw, err)
		return nil
	}
	return uri
}

// loadThumbnail starts the image download once. It runs off the main
// goroutine and hands the bytes to the thumbnail through fyne.DoAndWait.
func (cc *CharacterCard) loadThumbnail() {
	cc.imageOnce.Do(func() {
		if cc.imageURI == nil {
			close(cc.imageDone)
			return
		}
		go cc.fetchThumbnail()
	})
}

func (cc *CharacterCard) fetchThumbnail() {
	defer close(cc.imageDone)

	read, err := storage.Reader(cc.imageURI)
	if err != nil {
		fyne.LogError("Failed to open image URI "+cc.imageURI.String(), err)
		return
	}
	defer read.Close()

	img := canvas.NewImageFromReader(read, cc.imageURI.Name())
	if img == nil {
		return
	}

	fyne.DoAndWait(func() {
		cc.thumbnail.Resource = img.Resource
		cc.thumbnail.Refresh()
	})
}

// CreateRenderer creates the widget renderer
func (cc *CharacterCard) CreateRenderer() fyne.WidgetRenderer {
	r := &characterCardRenderer{card: cc}
	r.createLayout()
	cc.loadThumbnail()
	return r
}

// characterCardRenderer renders the character card widget
type characterCardRenderer struct {
	card   *CharacterCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *characterCardRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *characterCardRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	return min
}

// Refresh refreshes the renderer
func (r *characterCardRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *characterCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *characterCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *characterCardRenderer) createLayout() {
	cc := r.card

	info := container.NewVBox(
		cc.nameLabel,
		cc.statusLabel,
		cc.speciesLabel,
		cc.genderLabel,
		cc.idLabel,
		cc.urlLabel,
	)

	// Thumbnail pinned left and vertically centered, fields take the rest
	thumb := container.NewCenter(cc.thumbnail)
	row := container.NewBorder(nil, nil, thumb, nil, info)

	r.layout = container.NewStack(cc.background, container.NewPadded(row))
}
