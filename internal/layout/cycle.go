package layout

import (
	"github.com/ktsine/x-tilewm/internal/geometry"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Cycle holds the layouts available to a workspace and routes placement and
// messages to the active one, adopting any replacement a held layout returns.
// Cycle itself implements [Layout] so the event loop can drive it uniformly.
//
// Cycle handles [NextLayout] and [SetLayout] at its own level; every other
// message goes to the active layout. Which layout a consumer chooses to
// activate, and when, is the consumer's business.
type Cycle struct {
	layouts []Layout
	active  int
}

// NewCycle returns a container over the given layouts, activating the first.
// With no layouts it holds a single [Default] main and stack layout.
func NewCycle(layouts ...Layout) *Cycle {
	if len(layouts) == 0 {
		layouts = []Layout{Default()}
	}
	return &Cycle{layouts: layouts}
}

// Active returns the layout currently receiving placement and messages.
func (c *Cycle) Active() Layout {
	return c.layouts[c.active]
}

// Names lists the held layouts' names in order.
func (c *Cycle) Names() []string {
	names := make([]string, len(c.layouts))
	for i, l := range c.layouts {
		names[i] = l.Name()
	}
	return names
}

func (c *Cycle) Name() string {
	return c.Active().Name()
}

func (c *Cycle) Clone() Layout {
	layouts := make([]Layout, len(c.layouts))
	for i, l := range c.layouts {
		layouts[i] = l.Clone()
	}
	return &Cycle{layouts: layouts, active: c.active}
}

func (c *Cycle) Layout(s *stack.Stack[Client], r geometry.Rect) (Layout, []Placement) {
	repl, placements := c.Active().Layout(s, r)
	if repl != nil {
		c.layouts[c.active] = repl
	}
	return nil, placements
}

func (c *Cycle) HandleMessage(m Message) Layout {
	switch m := m.(type) {
	case NextLayout:
		c.active = (c.active + 1) % len(c.layouts)
	case SetLayout:
		for i, l := range c.layouts {
			if l.Name() == m.Name {
				c.active = i
				break
			}
		}
	default:
		if repl := c.Active().HandleMessage(m); repl != nil {
			c.layouts[c.active] = repl
		}
	}
	return nil
}
