package preset

import (
	"testing"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("loading presets: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("preset count: got %d, want 3", registry.Count())
	}

	names := registry.Names()
	want := []string{"cavern", "classic", "narrow"}
	if len(names) != len(want) {
		t.Fatalf("names: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistryGet(t *testing.T) {
	registry := MustLoadRegistry()

	classic := registry.Get("classic")
	if classic == nil {
		t.Fatal("classic preset missing")
	}
	if classic.Description == "" {
		t.Error("classic preset has no description")
	}

	if registry.Get("does-not-exist") != nil {
		t.Error("lookup of unknown preset should return nil")
	}
}

func TestPresetConfigsValidate(t *testing.T) {
	registry := MustLoadRegistry()

	for _, name := range registry.Names() {
		def := registry.Get(name)
		cfg := def.Config(128, 128)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produces invalid config: %v", name, err)
		}
		if cfg.Width != 128 || cfg.Height != 128 {
			t.Errorf("preset %q dimensions: got %dx%d", name, cfg.Width, cfg.Height)
		}
	}
}
