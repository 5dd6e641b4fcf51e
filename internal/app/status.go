package app

import (
	"sync"

	"github.com/ktsine/x-tilewm/internal/layout"
)

// Status is the snapshot of the window manager that the HTTP API serves. The
// event loop writes it after every render; API handlers only read.
type Status struct {
	mu         sync.RWMutex
	workspace  string
	layout     string
	layouts    []string
	placements []layout.Placement
}

func NewStatus() *Status {
	return &Status{}
}

func (s *Status) Set(workspace, active string, layouts []string, placements []layout.Placement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspace = workspace
	s.layout = active
	s.layouts = layouts
	s.placements = placements
}

func (s *Status) Snapshot() (workspace, active string, layouts []string, placements []layout.Placement) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspace, s.layout, s.layouts, s.placements
}
