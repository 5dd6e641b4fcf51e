package config

import (
	"path/filepath"
	"testing"
)

func TestNewStore_SeedsDefault(t *testing.T) {
	driver := NewMemory()

	store, err := NewStore(driver)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig error: %v", err)
	}
	if cfg.Layout != "Side" {
		t.Errorf("Layout = %q, want %q", cfg.Layout, "Side")
	}
	if cfg.Ratio != 0.6 {
		t.Errorf("Ratio = %v, want 0.6", cfg.Ratio)
	}
}

func TestStore_UpdateConfig(t *testing.T) {
	store, err := NewStore(NewMemory())
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	err = store.UpdateConfig(func(cfg Config) (Config, error) {
		cfg.MaxMain = 3
		return cfg, nil
	})
	if err != nil {
		t.Fatalf("UpdateConfig error: %v", err)
	}

	cfg, _ := store.GetConfig()
	if cfg.MaxMain != 3 {
		t.Errorf("MaxMain = %d, want 3", cfg.MaxMain)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	driver := NewYAML(filepath.Join(t.TempDir(), "config.yaml"))

	want := defaultConfig
	want.Layout = "Grid"
	want.OuterGap = 8
	want.Workspaces = []Workspace{{UUID: "u1", Name: "web", Layout: "Mono"}}

	if err := driver.Write(want); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got, err := driver.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.Layout != "Grid" || got.OuterGap != 8 {
		t.Errorf("Read = %+v, want %+v", got, want)
	}
	if len(got.Workspaces) != 1 || got.Workspaces[0] != want.Workspaces[0] {
		t.Errorf("Workspaces = %+v, want %+v", got.Workspaces, want.Workspaces)
	}
}

func TestYAML_MissingFileReturnsDefault(t *testing.T) {
	driver := NewYAML(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := driver.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if cfg.Layout != defaultConfig.Layout {
		t.Errorf("Layout = %q, want default %q", cfg.Layout, defaultConfig.Layout)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	driver := NewJSON(filepath.Join(t.TempDir(), "config.json"))

	want := defaultConfig
	want.RatioStep = 0.05

	if err := driver.Write(want); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got, err := driver.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got.RatioStep != 0.05 {
		t.Errorf("RatioStep = %v, want 0.05", got.RatioStep)
	}
}
