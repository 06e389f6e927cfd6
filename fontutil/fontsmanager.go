package fontutil

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	f := DefaultFont()
	opt := truetype.Options{} // defaults: size=12, dpi=72
	return f.FontFace(opt)
}

//----------

var FontsMan = NewFontsManager()

//----------

type FontsManager struct {
	mu         sync.Mutex
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.fontsCache = map[string]*Font{}
}

// ClearFacesCaches drops the cached faces of every loaded font. The
// fonts themselves stay cached.
func (fm *FontsManager) ClearFacesCaches() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	for _, f := range fm.fontsCache {
		f.ClearFacesCache()
	}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *truetype.Font
	mu         sync.Mutex
	facesCache map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	font, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: font}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.facesCache = map[truetype.Options]*FontFace{}
}

func (f *Font) FontFace(opt truetype.Options) *FontFace {
	// avoid divide by zero; also ensures face metrics work
	if opt.Size == 0 {
		opt.Size = 12 // internal truetype default
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	ff = NewFontFace(f, opt)
	f.facesCache[opt] = ff
	return ff
}

func (f *Font) FontFace2(size float64) *FontFace {
	opt := truetype.Options{Size: size}
	return f.FontFace(opt)
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics *font.Metrics

	lineHeight fixed.Int26_6
}

func NewFontFace(font *Font, opt truetype.Options) *FontFace {
	// should be set from font.FontFace
	if opt.Size == 0 || opt.DPI == 0 {
		panic("!")
	}

	face := truetype.NewFace(font.Font, &opt)
	face = NewFaceRunes(face)
	if Multithreaded() {
		face = NewFaceCacheL(face) // safe for concurrent calls
	} else {
		face = NewFaceCache(face) // safe for a single goroutine only
	}

	ff := &FontFace{Font: font, Face: face, Size: opt.Size}
	m := face.Metrics()
	ff.Metrics = &m

	ff.lineHeight = ff.Metrics.Ascent + ff.Metrics.Descent

	return ff
}

func (ff *FontFace) LineHeight() fixed.Int26_6 {
	return ff.lineHeight
}
func (ff *FontFace) LineHeightInt() int {
	return ff.LineHeight().Ceil()
}

// StringWidth is the pixel width of str under this face, rounded up
// to whole pixels.
func (ff *FontFace) StringWidth(str string) int {
	return StringWidth(ff.Face, str).Ceil()
}
