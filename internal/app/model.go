package app

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/k0kubun/pp"
	"github.com/ktsine/x-tilewm/internal/bus"
	"github.com/ktsine/x-tilewm/internal/config"
	"github.com/ktsine/x-tilewm/internal/layout"
	"github.com/ktsine/x-tilewm/internal/xwm"
)

// Keybindings, grabbed with Mod4 (super). The Detail values depend on the
// keyboard layout; these are QWERTY.
const (
	keyQ      = 24 // quit
	keyR      = 27 // rotate axis
	keyU      = 30 // unwrap transformer
	keyH      = 43 // shrink main
	keyJ      = 44 // focus next
	keyK      = 45 // focus previous
	keyL      = 46 // expand main
	keyM      = 58 // mirror
	keyComma  = 59 // more main clients
	keyPeriod = 60 // fewer main clients
	keySpace  = 65 // next layout

	// key1 through key1+8 switch to workspace 1 through 9.
	key1 = 10
)

var grabbedKeys = []xproto.Keycode{
	keyQ, keyR, keyU, keyH, keyJ, keyK, keyL, keyM, keyComma, keyPeriod, keySpace,
	key1, key1 + 1, key1 + 2, key1 + 3, key1 + 4, key1 + 5, key1 + 6, key1 + 7, key1 + 8,
}

type Model struct {
	Store  config.Store
	Status *Status
	Debug  bool

	Root       xwm.Root
	Screen     *Screen
	Workspaces []*Workspace
	active     int

	// mapped tracks which clients are currently shown; ignoreUnmaps counts
	// UnmapNotify events caused by us hiding a client, which must not be
	// mistaken for the client going away.
	mapped       map[layout.Client]bool
	ignoreUnmaps map[layout.Client]int
}

// workspace is the active workspace; there is always at least one.
func (m Model) workspace() *Workspace {
	return m.Workspaces[m.active]
}

// Screen is the geometry the layouts are computed against.
type Screen struct {
	W uint32
	H uint32
}

func (m Model) Init(ctx context.Context, conn *xgb.Conn) (xwm.Model, xwm.Cmd) {
	cfg, err := m.Store.GetConfig()
	if err != nil {
		return m, xwm.Error(err)
	}

	root, err := xwm.ManageRoot(conn)
	if err != nil {
		return m, xwm.Error(err)
	}

	if err := xwm.GrabKeys(conn, root.Window, xproto.ModMask4, grabbedKeys); err != nil {
		return m, xwm.Error(err)
	}

	m.Root = root
	m.Screen = &Screen{W: root.Rect.W, H: root.Rect.H}
	m.Workspaces = BuildWorkspaces(cfg)
	m.mapped = make(map[layout.Client]bool)
	m.ignoreUnmaps = make(map[layout.Client]int)

	slog.Info("Managing root window",
		"window", root.Window, "rect", root.Rect,
		"workspaces", len(m.Workspaces), "layout", m.workspace().Layouts.Name())

	return m, nil
}

func (m Model) Update(ctx context.Context, conn *xgb.Conn, msg xwm.Msg) (xwm.Model, xwm.Cmd) {
	switch ev := msg.(type) {
	case xproto.ConfigureNotifyEvent:
		if ev.Window == m.Root.Window {
			m.Screen.W = uint32(ev.Width)
			m.Screen.H = uint32(ev.Height)
		}

		return m, nil
	case xproto.MapRequestEvent:
		slog.Debug("MapRequestEvent", "window", ev.Window)

		m.workspace().Clients.Insert(layout.Client(ev.Window))

		return m, nil
	case xproto.UnmapNotifyEvent:
		client := layout.Client(ev.Window)
		if m.ignoreUnmaps[client] > 0 {
			m.ignoreUnmaps[client]--
			return m, nil
		}

		return m.unmanage(client), nil
	case xproto.DestroyNotifyEvent:
		return m.unmanage(layout.Client(ev.Window)), nil
	case xproto.KeyPressEvent:
		slog.Debug("KeyPressEvent", "detail", ev.Detail)

		return m.keyPress(ev)
	case bus.LayoutCommand:
		slog.Debug("LayoutCommand", "message", ev.Message)

		return m.handleLayoutMessage(ev.Message), nil
	case xwm.ErrorMsg:
		return m, xwm.Error(ev.Err)
	default:
		slog.Debug("Unknown event", "event", ev)
		return m, nil
	}
}

func (m Model) keyPress(ev xproto.KeyPressEvent) (xwm.Model, xwm.Cmd) {
	switch ev.Detail {
	case keyQ:
		slog.Debug("exit: quit key pressed")
		return m, xwm.Quit
	case keyJ:
		m.workspace().Clients.FocusNext()
		return m, nil
	case keyK:
		m.workspace().Clients.FocusPrev()
		return m, nil
	case keyH:
		return m.handleLayoutMessage(layout.ShrinkMain{}), nil
	case keyL:
		return m.handleLayoutMessage(layout.ExpandMain{}), nil
	case keyComma:
		return m.handleLayoutMessage(layout.IncMain{Delta: 1}), nil
	case keyPeriod:
		return m.handleLayoutMessage(layout.IncMain{Delta: -1}), nil
	case keyM:
		return m.handleLayoutMessage(layout.Mirror{}), nil
	case keyR:
		return m.handleLayoutMessage(layout.Rotate{}), nil
	case keyU:
		return m.handleLayoutMessage(layout.Unwrap{}), nil
	case keySpace:
		return m.handleLayoutMessage(layout.NextLayout{}), nil
	default:
		if ev.Detail >= key1 && ev.Detail <= key1+8 {
			return m.switchWorkspace(int(ev.Detail - key1)), nil
		}
		return m, nil
	}
}

func (m Model) switchWorkspace(i int) Model {
	if i < 0 || i >= len(m.Workspaces) || i == m.active {
		return m
	}

	m.active = i
	slog.Debug("Switched workspace", "index", i, "name", m.workspace().Name)

	return m
}

func (m Model) handleLayoutMessage(msg layout.Message) Model {
	// Cycle absorbs replacements from the layouts it holds and never
	// replaces itself.
	m.workspace().Layouts.HandleMessage(msg)
	return m
}

func (m Model) unmanage(client layout.Client) Model {
	// The client may live on any workspace, not just the visible one.
	for _, ws := range m.Workspaces {
		if ws.Clients.Remove(client) {
			delete(m.mapped, client)
			delete(m.ignoreUnmaps, client)
			break
		}
	}
	return m
}

func (m Model) Render(ctx context.Context, conn *xgb.Conn) error {
	screen := m.Root.Rect
	screen.W, screen.H = m.Screen.W, m.Screen.H

	ws := m.workspace()
	_, placements := ws.Layouts.Layout(ws.Clients, screen)

	if m.Debug {
		slog.Debug("Computed placements", "layout", ws.Layouts.Name(), "dump", pp.Sprint(placements))
	}

	assigned := make(map[layout.Client]bool, len(placements))
	for _, p := range placements {
		assigned[p.Client] = true

		if err := xwm.ConfigureWindow(conn, xproto.Window(p.Client), p.Rect); err != nil {
			return err
		}
		if !m.mapped[p.Client] {
			if err := xwm.MapWindow(conn, xproto.Window(p.Client)); err != nil {
				return err
			}
			m.mapped[p.Client] = true
		}
	}

	// Clients the layout left unplaced: everything on hidden workspaces, plus
	// whatever the active layout declined to place (monocle hides all but the
	// focus).
	for _, w := range m.Workspaces {
		for _, client := range w.Clients.Slice() {
			if assigned[client] || !m.mapped[client] {
				continue
			}
			if err := xwm.UnmapWindow(conn, xproto.Window(client)); err != nil {
				return err
			}
			m.mapped[client] = false
			m.ignoreUnmaps[client]++
		}
	}

	m.Status.Set(ws.Name, ws.Layouts.Name(), ws.Layouts.Names(), placements)

	return nil
}
