// Package textwidth reports the rendered pixel width of a string for
// a given font and size on x11 systems.
//
// A Context bundles a display connection and a resolved font. Widths
// come either from the server's own metrics for a core font opened by
// xlfd pattern, or from a truetype face measured in-process and sized
// against the screen dpi.
//
// Call SetupMultithreading before creating or using contexts from
// more than one goroutine.
package textwidth

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/TheNeikos/textwidth/fontutil"
	"github.com/TheNeikos/textwidth/xutil"
)

// Context holds the internal data required to measure a string: the
// display connection and the selected font.
type Context struct {
	dpy  *xutil.Display
	font fontHandle
}

// fontHandle is one of coreFont (server side) or faceFont (client
// side).
type fontHandle interface {
	textWidth(str string) int
	close()
}

//----------

// New resolves an xlfd pattern into a server-side core font on a
// freshly opened display connection.
//
// The pattern is of the x11 form, as selected by fontsel. Xft names
// are not supported.
func New(pattern string) (*Context, error) {
	return NewPatterns(pattern)
}

// NewPatterns tries each xlfd pattern in order and keeps the first
// font the server can open. With no patterns it falls back to the
// misc fixed preference list.
func NewPatterns(patterns ...string) (*Context, error) {
	dpy, err := xutil.NewDisplay()
	if err != nil {
		return nil, &ConnError{cause: err}
	}
	cf, err := xutil.OpenCoreFont(dpy, patterns...)
	if err != nil {
		dpy.Close()
		return nil, &FontError{Patterns: patterns, cause: err}
	}
	return &Context{dpy: dpy, font: &coreFont{cf: cf}}, nil
}

// WithMisc opens a context on the default "misc" fixed font family.
func WithMisc() (*Context, error) {
	return NewPatterns(xutil.MiscPatterns...)
}

// WithTTF opens a context measuring with a truetype font parsed from
// ttf, at the given point size, sized against the screen dpi of the
// connection.
func WithTTF(ttf []byte, size float64) (*Context, error) {
	dpy, err := xutil.NewDisplay()
	if err != nil {
		return nil, &ConnError{cause: err}
	}
	f, err := fontutil.FontsMan.Font(ttf)
	if err != nil {
		dpy.Close()
		return nil, &FontError{cause: err}
	}
	opt := truetype.Options{Size: size, DPI: dpy.DPI()}
	ff := f.FontFace(opt)
	return &Context{dpy: dpy, font: &faceFont{ff: ff}}, nil
}

// WithGoRegular is WithTTF on the embedded go regular font. Font
// resolution cannot fail; only the connection can.
func WithGoRegular(size float64) (*Context, error) {
	return WithTTF(goregular.TTF, size)
}

//----------

// TextWidth is the rendered pixel width of str under the context's
// font. The empty string is zero. Runes the font cannot represent
// measure as the font's replacement char; an underlying query failure
// measures as zero.
func (ctx *Context) TextWidth(str string) int {
	return ctx.font.textWidth(str)
}

// Close releases the font and the display connection.
func (ctx *Context) Close() {
	ctx.font.close()
	ctx.dpy.Close()
}

//----------

type coreFont struct {
	cf *xutil.CoreFont
}

func (h *coreFont) textWidth(str string) int {
	w, err := h.cf.TextWidth(str)
	if err != nil {
		return 0
	}
	return w
}
func (h *coreFont) close() {
	h.cf.Close()
}

//----------

type faceFont struct {
	ff *fontutil.FontFace
}

func (h *faceFont) textWidth(str string) int {
	return h.ff.StringWidth(str)
}
func (h *faceFont) close() {
	// nothing to release; faces are owned by the fonts manager
}
