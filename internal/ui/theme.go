package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Album palette, picked per variant so the accent stays readable on both
// backgrounds
var (
	accentLight = color.NRGBA{R: 196, G: 43, B: 28, A: 255}
	accentDark  = color.NRGBA{R: 239, G: 108, B: 90, A: 255}

	albumColors = map[fyne.ThemeVariant]map[fyne.ThemeColorName]color.Color{
		theme.VariantLight: {
			theme.ColorNamePrimary:   accentLight,
			theme.ColorNameFocus:     color.NRGBA{R: 196, G: 43, B: 28, A: 96},
			theme.ColorNameSelection: color.NRGBA{R: 196, G: 43, B: 28, A: 48},
			theme.ColorNameHover:     color.NRGBA{R: 0, G: 0, B: 0, A: 20},
			theme.ColorNameSuccess:   color.NRGBA{R: 38, G: 132, B: 58, A: 255},
			theme.ColorNameWarning:   color.NRGBA{R: 191, G: 120, B: 0, A: 255},
			theme.ColorNameError:     color.NRGBA{R: 176, G: 0, B: 32, A: 255},
		},
		theme.VariantDark: {
			theme.ColorNamePrimary:   accentDark,
			theme.ColorNameFocus:     color.NRGBA{R: 239, G: 108, B: 90, A: 110},
			theme.ColorNameSelection: color.NRGBA{R: 239, G: 108, B: 90, A: 64},
			theme.ColorNameHover:     color.NRGBA{R: 255, G: 255, B: 255, A: 24},
			theme.ColorNameSuccess:   color.NRGBA{R: 102, G: 187, B: 106, A: 255},
			theme.ColorNameWarning:   color.NRGBA{R: 255, G: 183, B: 77, A: 255},
			theme.ColorNameError:     color.NRGBA{R: 239, G: 83, B: 80, A: 255},
		},
	}

	// Tighter rows so a queue or an album listing shows more tracks at once
	albumSizes = map[fyne.ThemeSizeName]float32{
		theme.SizeNamePadding:            3,
		theme.SizeNameInnerPadding:       5,
		theme.SizeNameLineSpacing:        2,
		theme.SizeNameText:               13,
		theme.SizeNameHeadingText:        18,
		theme.SizeNameSubHeadingText:     15,
		theme.SizeNameCaptionText:        11,
		theme.SizeNameInlineIcon:         18,
		theme.SizeNameSeparatorThickness: 1,
		theme.SizeNameScrollBarSmall:     3,
		theme.SizeNameInputRadius:        4,
		theme.SizeNameSelectionRadius:    2,
	}
)

// AlbumTheme is the default theme with the album palette and tighter list
// sizes. Fonts and icons come from the wrapped theme.
type AlbumTheme struct {
	fyne.Theme
}

// NewAlbumTheme wraps fyne's default theme
func NewAlbumTheme() fyne.Theme {
	return &AlbumTheme{Theme: theme.DefaultTheme()}
}

// Color returns the album palette entry for name, falling back to the
// wrapped theme
func (t *AlbumTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	palette, ok := albumColors[variant]
	if !ok {
		palette = albumColors[theme.VariantLight]
	}
	if c, ok := palette[name]; ok {
		return c
	}
	return t.Theme.Color(name, variant)
}

// Size returns the album size for name, falling back to the wrapped theme
func (t *AlbumTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := albumSizes[name]; ok {
		return s
	}
	return t.Theme.Size(name)
}
