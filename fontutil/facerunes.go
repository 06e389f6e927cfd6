package fontutil

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var TabWidth = 8 // n times the space glyph

// Special runes face. Makes advance queries total: control runes get
// a defined width and runes missing from the font measure as the
// replacement char.
type FaceRunes struct {
	font.Face
}

func NewFaceRunes(face font.Face) *FaceRunes {
	return &FaceRunes{face}
}

func (fr *FaceRunes) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	adv, ok := fr.replace(ru)
	if ok {
		return adv, ok
	}
	adv, ok = fr.Face.GlyphAdvance(ru)
	if !ok {
		return fr.Face.GlyphAdvance(unicode.ReplacementChar)
	}
	return adv, ok
}

//----------

func (fr *FaceRunes) replace(ru rune) (fixed.Int26_6, bool) {
	switch ru {
	case '\t':
		adv, ok := fr.Face.GlyphAdvance(' ')
		adv *= fixed.Int26_6(TabWidth)
		return adv, ok
	case '\n', '\r':
		return 0, true
	case 0:
		return fr.Face.GlyphAdvance(unicode.ReplacementChar)
	}
	return 0, false
}
