package fontutil

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Same as FaceCache but with locks.
type FaceCacheL struct {
	font.Face
	mu  sync.RWMutex
	gac map[rune]*GlyphAdvanceCache
	kc  map[string]fixed.Int26_6 // kern cache
}

func NewFaceCacheL(face font.Face) *FaceCacheL {
	fc := &FaceCacheL{Face: face}
	fc.gac = make(map[rune]*GlyphAdvanceCache)
	fc.kc = make(map[string]fixed.Int26_6)
	return fc
}
func (fc *FaceCacheL) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	fc.mu.RLock()
	gac, ok := fc.gac[ru]
	fc.mu.RUnlock()
	if !ok {
		fc.mu.Lock()
		gac, ok = fc.gac[ru]
		if !ok {
			gac = NewGlyphAdvanceCache(fc.Face, ru)
			fc.gac[ru] = gac
		}
		fc.mu.Unlock()
	}
	return gac.advance, gac.ok
}
func (fc *FaceCacheL) Kern(r0, r1 rune) fixed.Int26_6 {
	i := kernIndex(r0, r1)
	fc.mu.RLock()
	k, ok := fc.kc[i]
	fc.mu.RUnlock()
	if !ok {
		fc.mu.Lock()
		k, ok = fc.kc[i]
		if !ok {
			k = fc.Face.Kern(r0, r1)
			fc.kc[i] = k
		}
		fc.mu.Unlock()
	}
	return k
}
