package types

import (
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}

// CenteredX is the x position that centers s in a span of the given width
// starting at 0.
func CenteredX(face font.Face, s string, width int) int {
	return (width - text.BoundString(face, s).Dx()) / 2
}
