package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	if fyne.CurrentApp() == nil {
		return false
	}
	return fyne.CurrentDevice().IsMobile()
}

// screenWidth returns the width the list is laid out for
func screenWidth() float32 {
	if isMobileDevice() {
		return MobileWindowWidth
	}
	return WindowWidth
}

// urlTextWidth returns the room left for one URL line inside a card: the
// screen minus list and card padding, the thumbnail, the gap next to it and
// the label's inner padding. One extra padding absorbs rounding.
func urlTextWidth() float32 {
	return screenWidth() - ThumbnailSize - 6*theme.Padding() - 2*theme.InnerPadding()
}
