package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CharacterTheme is a light theme carrying the palette of the character screen
type CharacterTheme struct{}

// NewCharacterTheme creates a new character theme
func NewCharacterTheme() fyne.Theme {
	return &CharacterTheme{}
}

// Color returns theme colors. The screen is always light, so the variant is ignored.
func (t *CharacterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorPageBackground
	case theme.ColorNameForeground:
		return ColorText
	case theme.ColorNamePrimary:
		return ColorSpinner
	case theme.ColorNameError:
		return ColorErrorText
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *CharacterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CharacterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CharacterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNamePadding:
		return 5
	}

	return theme.DefaultTheme().Size(name)
}
