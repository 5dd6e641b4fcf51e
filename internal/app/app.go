// Package app is the window manager: it owns the client stack and the active
// layouts, reacts to X events and control commands, and applies the computed
// placements to the display server.
package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ktsine/x-tilewm/internal/config"
	"github.com/ktsine/x-tilewm/internal/layout"
	"github.com/ktsine/x-tilewm/internal/stack"
)

// Workspace is an independent set of clients with its own layout cycle. Only
// the active workspace's clients are shown; the rest stay managed but hidden.
type Workspace struct {
	UUID string
	Name string

	Clients *stack.Stack[layout.Client]
	Layouts *layout.Cycle
}

// NormalizeConfig assigns identifiers to workspaces that were written without
// one.
func NormalizeConfig(store config.Store) error {
	return store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
		for i := range cfg.Workspaces {
			if cfg.Workspaces[i].UUID == "" {
				cfg.Workspaces[i].UUID = uuid.NewString()
			}
		}

		return cfg, nil
	})
}

// BuildWorkspaces materializes the configured workspaces, each with its own
// client stack and layout cycle. A workspace's layout name, when set,
// overrides the top level one. With no workspaces configured a single unnamed
// one is created.
func BuildWorkspaces(cfg config.Config) []*Workspace {
	if len(cfg.Workspaces) == 0 {
		return []*Workspace{{
			Clients: stack.New[layout.Client](),
			Layouts: BuildLayouts(cfg, cfg.Layout),
		}}
	}

	workspaces := make([]*Workspace, 0, len(cfg.Workspaces))
	for _, ws := range cfg.Workspaces {
		active := cfg.Layout
		if ws.Layout != "" {
			active = ws.Layout
		}

		workspaces = append(workspaces, &Workspace{
			UUID:    ws.UUID,
			Name:    ws.Name,
			Clients: stack.New[layout.Client](),
			Layouts: BuildLayouts(cfg, active),
		})
	}

	return workspaces
}

// BuildLayouts constructs a layout cycle described by cfg: the four main and
// stack orientations, monocle, and grid, optionally wrapped in gaps, with the
// named layout active.
func BuildLayouts(cfg config.Config, active string) *layout.Cycle {
	layouts := []layout.Layout{
		layout.Side(cfg.MaxMain, cfg.Ratio, cfg.RatioStep),
		layout.SideMirrored(cfg.MaxMain, cfg.Ratio, cfg.RatioStep),
		layout.Bottom(cfg.MaxMain, cfg.Ratio, cfg.RatioStep),
		layout.Top(cfg.MaxMain, cfg.Ratio, cfg.RatioStep),
		layout.Monocle{},
		layout.Grid{},
	}

	if cfg.OuterGap > 0 || cfg.InnerGap > 0 {
		for i := range layouts {
			layouts[i] = layout.NewGaps(layouts[i], cfg.OuterGap, cfg.InnerGap)
		}
		active = fmt.Sprintf("Gaps(%s)", active)
	}

	cycle := layout.NewCycle(layouts...)
	cycle.HandleMessage(layout.SetLayout{Name: active})

	return cycle
}
