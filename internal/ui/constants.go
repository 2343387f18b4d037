package ui

import "image/color"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window sizing (portrait, phone-like)
const (
	WindowWidth  float32 = 400
	WindowHeight float32 = 800

	// Narrowest common phone width, used when the screen size is not the window's
	MobileWindowWidth float32 = 360
)

// Card sizing
const (
	ThumbnailSize    float32 = 120
	CardMinWidth     float32 = 320
	CardCornerRadius float32 = 10
	HeaderRadius     float32 = 10
)

// URL display: at most two lines, ellipsis on overflow
const (
	URLMaxLines        = 2
	TruncationEllipsis = '…'
)

// Palette of the screen
var (
	ColorPageBackground   = color.NRGBA{R: 0xfd, G: 0xfd, B: 0x96, A: 0xff} // pastel yellow
	ColorHeaderBackground = color.NRGBA{R: 0xb2, G: 0xe2, B: 0xf2, A: 0xff} // pastel blue
	ColorCardBackground   = color.NRGBA{R: 0x77, G: 0xdd, B: 0x77, A: 0xff} // pastel green
	ColorLoaderBackground = color.NRGBA{R: 0xb2, G: 0xe2, B: 0xf2, A: 0xff}
	ColorErrorBackground  = color.NRGBA{R: 0x29, G: 0x38, B: 0x44, A: 0xff}
	ColorErrorText        = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorLoaderText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorSpinner          = color.NRGBA{R: 0x56, G: 0xa9, B: 0x56, A: 0xff}
	ColorText             = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)
