package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := Default()
	if c.GraphDirection != "LR" {
		t.Fatalf("default direction = %q, want LR", c.GraphDirection)
	}
	if c.UseASCII {
		t.Fatal("default should use unicode")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("useAscii: true\npaddingX: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !c.UseASCII {
		t.Fatal("expected useAscii to be overridden to true")
	}
	if c.PaddingX != 5 {
		t.Fatalf("paddingX = %d, want 5", c.PaddingX)
	}
	if c.PaddingY != 1 {
		t.Fatalf("paddingY should keep default 1, got %d", c.PaddingY)
	}
}

func TestNormalizedDirectionFlips(t *testing.T) {
	c := Config{GraphDirection: "RL"}
	base, flip := c.NormalizedDirection()
	if base != "LR" || !flip {
		t.Fatalf("got %q flip=%v, want LR true", base, flip)
	}
	c = Config{GraphDirection: "BT"}
	base, flip = c.NormalizedDirection()
	if base != "TD" || !flip {
		t.Fatalf("got %q flip=%v, want TD true", base, flip)
	}
}
