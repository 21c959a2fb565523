package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultDanmakuConfig()
	if err := yaml.Unmarshal(defaultDanmakuYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultDanmakuConfig() {
		t.Errorf("embedded defaults drifted from DefaultDanmakuConfig():\n%+v\n%+v", cfg, DefaultDanmakuConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDanmakuConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  speed: 250\nenemy:\n  spawn_cooldown: 750ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDanmaku(path)
	if err != nil {
		t.Fatalf("LoadDanmaku() error = %v", err)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, expected 250", cfg.Player.Speed)
	}
	if cfg.Enemy.SpawnCooldown != 750*time.Millisecond {
		t.Errorf("Enemy.SpawnCooldown = %v, expected 750ms", cfg.Enemy.SpawnCooldown)
	}
	if cfg.Field.Width != 500 {
		t.Errorf("Field.Width = %v, expected default 500", cfg.Field.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(broken, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("field:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", broken, "failed to parse"},
		{"fails validation", invalid, "field.width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadDanmaku(tc.path)
			if err == nil {
				t.Fatal("LoadDanmaku() error = nil, expected failure")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.want)
			}
			if cfg != DefaultDanmakuConfig() {
				t.Error("failed load should still hand back usable defaults")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DanmakuConfig)
		want   string
	}{
		{"zero cooldown", func(c *DanmakuConfig) { c.Player.FireCooldown = 0 }, "player.fire_cooldown"},
		{"inverted bias", func(c *DanmakuConfig) { c.Enemy.BiasMin = 200 }, "inverted"},
		{"spawn range wider than field", func(c *DanmakuConfig) { c.Enemy.SpawnRange = 400 }, "spawn_range"},
		{"dead player", func(c *DanmakuConfig) { c.Player.HP = 0 }, "player.hp"},
		{"negative attack", func(c *DanmakuConfig) { c.Enemy.Attack = -1 }, "attack"},
		{"unknown color", func(c *DanmakuConfig) { c.Colors.Enemy = "mauve" }, "colors.enemy"},
		{"player larger than field", func(c *DanmakuConfig) { c.Player.HalfSize = 300 }, "fit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDanmakuConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}
