package xutil

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func openDisplay(t *testing.T) *Display {
	t.Helper()
	dpy, err := NewDisplay()
	if err != nil {
		t.Skipf("no x display available: %v", err)
	}
	return dpy
}

func TestDisplay(t *testing.T) {
	dpy := openDisplay(t)
	defer dpy.Close()
	if dpi := dpy.DPI(); dpi <= 0 {
		t.Fatalf("dpi: %v", dpi)
	}
}

func TestOpenCoreFont(t *testing.T) {
	dpy := openDisplay(t)
	defer dpy.Close()
	cf, err := OpenCoreFont(dpy)
	if err != nil {
		t.Skipf("no misc fixed font installed: %v", err)
	}
	defer cf.Close()

	if cf.Info() == nil {
		t.Fatal("no font info")
	}
	w, err := cf.TextWidth("Hello World")
	if err != nil {
		t.Fatal(err)
	}
	if w <= 0 {
		t.Fatalf("expected positive width, got %v", w)
	}
	w, err = cf.TextWidth("")
	if err != nil {
		t.Fatal(err)
	}
	if w != 0 {
		t.Fatalf("empty string width: %v", w)
	}
}

func TestOpenCoreFontBadPattern(t *testing.T) {
	dpy := openDisplay(t)
	defer dpy.Close()
	_, err := OpenCoreFont(dpy, "basdkladslk")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestListFonts(t *testing.T) {
	dpy := openDisplay(t)
	defer dpy.Close()
	names, err := ListFonts(dpy, "*", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Skip("server has no fonts")
	}
}

//----------

func TestChar2bString(t *testing.T) {
	chars := Char2bString("aé€")
	if len(chars) != 3 {
		t.Fatalf("len: %v", len(chars))
	}
	if chars[0] != (xproto.Char2b{Byte1: 0, Byte2: 'a'}) {
		t.Fatalf("a: %+v", chars[0])
	}
	if chars[1] != (xproto.Char2b{Byte1: 0, Byte2: 0xe9}) {
		t.Fatalf("é: %+v", chars[1])
	}
	if chars[2] != (xproto.Char2b{Byte1: 0x20, Byte2: 0xac}) {
		t.Fatalf("€: %+v", chars[2])
	}
}

func TestChar2bStringAstral(t *testing.T) {
	// beyond the basic plane maps to the replacement char code
	chars := Char2bString("\U0001F600")
	if len(chars) != 1 {
		t.Fatalf("len: %v", len(chars))
	}
	if chars[0] != (xproto.Char2b{Byte1: 0xff, Byte2: 0xfd}) {
		t.Fatalf("got %+v", chars[0])
	}
}
