package config

var defaultConfig = Config{
	Layout:     "Side",
	Ratio:      0.6,
	RatioStep:  0.1,
	MaxMain:    1,
	Workspaces: []Workspace{},
}

type Config struct {
	// Layout is the name of the layout active at startup.
	Layout string `json:"layout" yaml:"layout"`
	// Ratio is the fraction of the screen given to the main area.
	Ratio float32 `json:"ratio" yaml:"ratio"`
	// RatioStep is how far one expand or shrink message moves the ratio.
	RatioStep float32 `json:"ratio_step" yaml:"ratio_step"`
	// MaxMain is the number of clients placed in the main area.
	MaxMain uint32 `json:"max_main" yaml:"max_main"`
	// OuterGap and InnerGap, when non-zero, wrap every layout in gaps.
	OuterGap   uint32      `json:"outer_gap" yaml:"outer_gap"`
	InnerGap   uint32      `json:"inner_gap" yaml:"inner_gap"`
	Workspaces []Workspace `json:"workspaces" yaml:"workspaces"`
}

type Workspace struct {
	UUID string `json:"uuid" yaml:"uuid"`
	Name string `json:"name" yaml:"name"`
	// Layout overrides the top level layout name for this workspace.
	Layout string `json:"layout" yaml:"layout"`
}
