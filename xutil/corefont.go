package xutil

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// MiscPatterns is tried in order by OpenCoreFont when no explicit
// pattern is given. The x server resolves the first pattern that
// matches an installed font.
var MiscPatterns = []string{
	"-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1",
	"-misc-fixed-*-*-*-*-*-*-*-*-*-*-*-*",
	"-*-fixed-medium-r-*-*-13-*-*-*-*-*-*-*",
	"9x15",
	"fixed",
}

// CoreFont is a font opened on the server side. Width queries go over
// the wire and use the server's own metrics for the font.
type CoreFont struct {
	dpy  *Display
	id   xproto.Font
	info *xproto.QueryFontReply
}

func OpenCoreFont(dpy *Display, patterns ...string) (*CoreFont, error) {
	if len(patterns) == 0 {
		patterns = MiscPatterns
	}
	fid, err := xproto.NewFontId(dpy.Conn)
	if err != nil {
		return nil, err
	}
	for _, pattern := range patterns {
		err = xproto.OpenFontChecked(dpy.Conn, fid, uint16(len(pattern)), pattern).Check()
		if err == nil {
			cf := &CoreFont{dpy: dpy, id: fid}
			info, err2 := xproto.QueryFont(dpy.Conn, xproto.Fontable(fid)).Reply()
			if err2 != nil {
				cf.Close()
				return nil, errors.Wrap(err2, "query font")
			}
			cf.info = info
			return cf, nil
		}
	}
	// err is the failure of the last pattern tried
	return nil, errors.Wrapf(err, "open font: %q", patterns)
}

func (cf *CoreFont) Close() {
	_ = xproto.CloseFont(cf.dpy.Conn, cf.id)
}

func (cf *CoreFont) Info() *xproto.QueryFontReply {
	return cf.info
}

//----------

func (cf *CoreFont) TextExtents(str string) (*xproto.QueryTextExtentsReply, error) {
	chars := Char2bString(str)
	cookie := xproto.QueryTextExtents(cf.dpy.Conn, xproto.Fontable(cf.id), chars, uint16(len(chars)))
	return cookie.Reply()
}

// TextWidth is the overall horizontal extent of str in pixels. The
// empty string is zero without a round trip.
func (cf *CoreFont) TextWidth(str string) (int, error) {
	if str == "" {
		return 0, nil
	}
	r, err := cf.TextExtents(str)
	if err != nil {
		return 0, errors.Wrap(err, "query text extents")
	}
	return int(r.OverallWidth), nil
}

//----------

// Char2bString encodes str as the 2-byte char codes used by the core
// protocol text requests. Runes beyond the basic multilingual plane
// are not representable in a core font and map to the replacement
// char code.
func Char2bString(str string) []xproto.Char2b {
	chars := make([]xproto.Char2b, 0, len(str))
	for _, ru := range str {
		if ru > 0xffff {
			ru = 0xfffd
		}
		chars = append(chars, xproto.Char2b{Byte1: byte(ru >> 8), Byte2: byte(ru)})
	}
	return chars
}

//----------

// ListFonts asks the server for up to max font names matching the
// given pattern.
func ListFonts(dpy *Display, pattern string, max int) ([]string, error) {
	cookie := xproto.ListFonts(dpy.Conn, uint16(max), uint16(len(pattern)), pattern)
	r, err := cookie.Reply()
	if err != nil {
		return nil, errors.Wrap(err, "list fonts")
	}
	names := make([]string, 0, len(r.Names))
	for _, s := range r.Names {
		names = append(names, s.Name)
	}
	return names, nil
}
