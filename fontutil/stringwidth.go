package fontutil

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// StringWidth walks str with a pen, adding kerning between consecutive
// runes and each rune advance. The result is the final pen position,
// which can be below the sum of the individual advances when the font
// kerns pairs closer together.
func StringWidth(face font.Face, str string) fixed.Int26_6 {
	var pen fixed.Int26_6
	prevRu := rune(-1)
	for _, ru := range str {
		if prevRu >= 0 {
			pen += face.Kern(prevRu, ru)
		}
		adv, ok := face.GlyphAdvance(ru)
		if !ok {
			// face has no glyph and no replacement; skip
			prevRu = ru
			continue
		}
		pen += adv
		prevRu = ru
	}
	if pen < 0 {
		pen = 0
	}
	return pen
}
