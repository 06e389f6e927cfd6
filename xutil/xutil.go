package xutil

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// Display wraps a connection to the x server together with the setup
// information sent back at connect time.
type Display struct {
	Conn      *xgb.Conn
	SetupInfo *xproto.SetupInfo
	Screen    *xproto.ScreenInfo
}

func NewDisplay() (*Display, error) {
	display := os.Getenv("DISPLAY")
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	// disable xgb logger that prints to stderr
	xgb.Logger = log.New(ioutil.Discard, "", 0)

	d := &Display{Conn: conn}
	d.SetupInfo = xproto.Setup(conn)
	d.Screen = d.SetupInfo.DefaultScreen(conn)
	return d, nil
}
func (d *Display) Close() {
	d.Conn.Close()
}

// DPI derived from the default screen physical size. Falls back to 72
// when the server reports no physical extent (nested/headless servers).
func (d *Display) DPI() float64 {
	if d.Screen.WidthInMillimeters == 0 {
		return 72
	}
	wpx := float64(d.Screen.WidthInPixels)
	wmm := float64(d.Screen.WidthInMillimeters)
	return wpx * 25.4 / wmm
}
