package xwm

import (
	"errors"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/xcursor"
)

// ErrWMRunning is returned by [ManageRoot] when another window manager
// already owns substructure redirection on the root window.
var ErrWMRunning = errors.New("another window manager is running")

// Root is the root window of the screen being managed.
type Root struct {
	Window xproto.Window
	Rect   geometry.Rect
}

// ManageRoot selects substructure redirection on the default screen's root
// window, making this process the window manager, and installs the default
// cursor.
func ManageRoot(conn *xgb.Conn) (Root, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr)
	if err != nil {
		return Root{}, err
	}

	if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwEventMask|xproto.CwCursor,
		[]uint32{
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskStructureNotify |
				xproto.EventMaskKeyPress,
			uint32(cursor),
		}).Check(); err != nil {
		return Root{}, fmt.Errorf("%w: %s", ErrWMRunning, err)
	}

	return Root{
		Window: screen.Root,
		Rect:   geometry.New(0, 0, uint32(screen.WidthInPixels), uint32(screen.HeightInPixels)),
	}, nil
}

// GrabKeys registers for key presses of the given keycodes with the given
// modifier on the root window.
func GrabKeys(conn *xgb.Conn, root xproto.Window, modifiers uint16, keycodes []xproto.Keycode) error {
	for _, keycode := range keycodes {
		if err := xproto.GrabKeyChecked(conn, true, root, modifiers, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
			return fmt.Errorf("grab keycode %d: %w", keycode, err)
		}
	}
	return nil
}

// ConfigureWindow moves and resizes a window to r.
func ConfigureWindow(conn *xgb.Conn, wid xproto.Window, r geometry.Rect) error {
	return xproto.ConfigureWindowChecked(conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.X), uint32(r.Y), r.W, r.H}).
		Check()
}

// MapWindow shows a window.
func MapWindow(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.MapWindowChecked(conn, wid).Check()
}

// UnmapWindow hides a window.
func UnmapWindow(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.UnmapWindowChecked(conn, wid).Check()
}
