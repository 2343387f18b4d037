package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/character-viewer/internal/model"
)

// rickSanchez builds the first record. An empty imageBase leaves it without image.
func rickSanchez(imageBase string) model.Character {
	src := ""
	if imageBase != "" {
		src = imageBase + "/1.png"
	}
	return model.Character{
		ID:      1,
		Name:    "Rick Sanchez",
		Status:  model.StatusAlive,
		Species: "Human",
		Gender:  "Male",
		Image:   src,
		URL:     "https://api/character/1",
	}
}

func TestCharacterCard_FieldMapping(t *testing.T) {
	test.NewApp()
	images := newImageServer(t, 0)

	card := NewCharacterCard(rickSanchez(images.URL), NewLocalization())

	assert.Equal(t, "1", card.Key())
	assert.Equal(t, "Nombre del Personaje: Rick Sanchez", card.nameLabel.Text)
	assert.Equal(t, "Estado actual: Alive", card.statusLabel.Text)
	assert.Equal(t, "Especie: Human", card.speciesLabel.Text)
	assert.Equal(t, "Género: Male", card.genderLabel.Text)
	assert.Equal(t, "ID: 1", card.idLabel.Text)
	assert.Equal(t, "URL: https://api/character/1", card.urlLabel.Text)

	require.NotNil(t, card.ImageURI())
	assert.Equal(t, images.URL+"/1.png", card.ImageURI().String())
	assert.Equal(t, canvas.ImageFillContain, card.thumbnail.FillMode)
	assert.Equal(t, ThumbnailSize, card.thumbnail.MinSize().Width)
	assert.Equal(t, ThumbnailSize, card.thumbnail.MinSize().Height)
	assert.Equal(t, 0, images.Hits(), "building a card must not fetch its image")
}

func TestCharacterCard_LoadsImageOnce(t *testing.T) {
	test.NewApp()
	images := newImageServer(t, 0)

	card := NewCharacterCard(rickSanchez(images.URL), NewLocalization())
	test.WidgetRenderer(card)
	card.loadThumbnail()

	select {
	case <-card.imageDone:
	case <-time.After(5 * time.Second):
		t.Fatal("image never finished loading")
	}

	require.NotNil(t, card.thumbnail.Resource)
	assert.Equal(t, images.PNG, card.thumbnail.Resource.Content())
	assert.Equal(t, "1.png", card.thumbnail.Resource.Name())
	assert.Equal(t, 1, images.Hits())
	assert.Equal(t, ThumbnailSize, card.thumbnail.MinSize().Width)
}

func TestCharacterCard_EnglishLabels(t *testing.T) {
	test.NewApp()

	l := NewLocalization()
	l.SetLanguage("en")
	card := NewCharacterCard(rickSanchez(""), l)

	assert.Equal(t, "Character name: Rick Sanchez", card.nameLabel.Text)
	assert.Equal(t, "Current status: Alive", card.statusLabel.Text)
}

func TestCharacterCard_LongURLFitsTwoLines(t *testing.T) {
	test.NewApp()

	c := rickSanchez("")
	c.URL = "https://rickandmortyapi.com/api/character/1?" + "padding=verylongvalue&padding=verylongvalue&padding=verylongvalue"
	card := NewCharacterCard(c, NewLocalization())

	lines := strings.Split(card.urlLabel.Text, "\n")
	assert.Len(t, lines, URLMaxLines)
	for _, line := range lines {
		assert.LessOrEqual(t, measureText(line), urlTextWidth(), "line %q", line)
	}
	assert.True(t, strings.HasSuffix(card.urlLabel.Text, string(TruncationEllipsis)))
}

func TestCharacterCard_URLKeepsIDWhole(t *testing.T) {
	test.NewApp()

	c := rickSanchez("")
	c.ID = 20
	c.URL = "https://rickandmortyapi.com/api/character/20"
	card := NewCharacterCard(c, NewLocalization())

	assert.NotContains(t, card.urlLabel.Text, "2\n0")
	for _, line := range strings.Split(card.urlLabel.Text, "\n") {
		assert.LessOrEqual(t, measureText(line), urlTextWidth(), "line %q", line)
	}
}

func TestCharacterCard_WithoutImage(t *testing.T) {
	test.NewApp()

	card := NewCharacterCard(rickSanchez(""), NewLocalization())

	assert.Nil(t, card.ImageURI())
	assert.Equal(t, ThumbnailSize, card.thumbnail.MinSize().Width)

	test.WidgetRenderer(card)
	select {
	case <-card.imageDone:
	case <-time.After(time.Second):
		t.Fatal("a card without image should settle immediately")
	}
	assert.Nil(t, card.thumbnail.Resource)
}

func TestCharacterCard_MinSize(t *testing.T) {
	test.NewApp()

	card := NewCharacterCard(rickSanchez(""), NewLocalization())
	min := card.MinSize()

	assert.GreaterOrEqual(t, min.Width, CardMinWidth)
	assert.LessOrEqual(t, min.Width, WindowWidth)
	assert.GreaterOrEqual(t, min.Height, ThumbnailSize)
}
