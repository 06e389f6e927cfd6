package fontutil

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type FaceCache struct {
	font.Face
	gac map[rune]*GlyphAdvanceCache
	kc  map[string]fixed.Int26_6 // kern cache
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gac = make(map[rune]*GlyphAdvanceCache)
	fc.kc = make(map[string]fixed.Int26_6)
	return fc
}
func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	gac, ok := fc.gac[ru]
	if !ok {
		gac = NewGlyphAdvanceCache(fc.Face, ru)
		fc.gac[ru] = gac
	}
	return gac.advance, gac.ok
}
func (fc *FaceCache) Kern(r0, r1 rune) fixed.Int26_6 {
	i := kernIndex(r0, r1)
	k, ok := fc.kc[i]
	if !ok {
		k = fc.Face.Kern(r0, r1)
		fc.kc[i] = k
	}
	return k
}

//----------

type GlyphAdvanceCache struct {
	advance fixed.Int26_6
	ok      bool
}

func NewGlyphAdvanceCache(face font.Face, ru rune) *GlyphAdvanceCache {
	adv, ok := face.GlyphAdvance(ru) // only one can run at a time
	return &GlyphAdvanceCache{adv, ok}
}

//----------

func kernIndex(r0, r1 rune) string {
	return string([]rune{r0, ',', r1})
}
