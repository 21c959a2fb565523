package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// FileName is the config file name looked up in every search directory.
const FileName = "danmaku.yaml"

// LoadDanmaku loads the shooter tuning.
// Search order: customPath -> ~/.danmaku/configs/danmaku.yaml -> ./configs/danmaku.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadDanmaku(customPath string) (DanmakuConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultDanmakuConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultDanmakuConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files there are skipped rather than fatal.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultDanmakuConfig()
	if err := yaml.Unmarshal(defaultDanmakuYAML, &cfg); err != nil {
		return DefaultDanmakuConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (DanmakuConfig, error) {
	cfg := DefaultDanmakuConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".danmaku", "configs", filename)
}

// Validate reports every setting that would break the simulation.
func (c DanmakuConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("player.half_size", c.Player.HalfSize)
	positive("player.hitbox_radius", c.Player.HitboxRadius)
	positive("player.speed", c.Player.Speed)
	positive("player.fire_cooldown", c.Player.FireCooldown.Seconds())
	positive("enemy.half_w", c.Enemy.HalfW)
	positive("enemy.half_h", c.Enemy.HalfH)
	positive("enemy.spawn_cooldown", c.Enemy.SpawnCooldown.Seconds())
	positive("enemy.fire_cooldown", c.Enemy.FireCooldown.Seconds())
	positive("bullets.player.speed", c.Bullets.Player.Speed)
	positive("bullets.player.half_w", c.Bullets.Player.HalfW)
	positive("bullets.player.half_h", c.Bullets.Player.HalfH)
	positive("bullets.enemy.speed", c.Bullets.Enemy.Speed)
	positive("bullets.enemy.radius", c.Bullets.Enemy.Radius)

	if c.Player.HP <= 0 {
		errs = append(errs, fmt.Errorf("player.hp must be positive, got %d", c.Player.HP))
	}
	if c.Enemy.HP <= 0 {
		errs = append(errs, fmt.Errorf("enemy.hp must be positive, got %d", c.Enemy.HP))
	}
	if c.Player.Attack < 0 || c.Enemy.Attack < 0 || c.Bullets.Player.Attack < 0 || c.Bullets.Enemy.Attack < 0 {
		errs = append(errs, errors.New("attack values must not be negative"))
	}
	if c.Player.HalfSize*2 > c.Field.Width || c.Player.HalfSize*2 > c.Field.Height {
		errs = append(errs, errors.New("player does not fit inside the field"))
	}
	if c.Enemy.SpawnRange < 0 || c.Enemy.SpawnRange > c.Field.Width/2 {
		errs = append(errs, fmt.Errorf("enemy.spawn_range must be within [0, %v], got %v", c.Field.Width/2, c.Enemy.SpawnRange))
	}
	if c.Enemy.BiasMin < 0 || c.Enemy.BiasMin > c.Enemy.BiasMax {
		errs = append(errs, fmt.Errorf("enemy bias range [%v, %v] is inverted or negative", c.Enemy.BiasMin, c.Enemy.BiasMax))
	}
	if c.Enemy.FallSpeed < 0 || c.Enemy.FallAccel < 0 {
		errs = append(errs, errors.New("enemy fall speed and acceleration must not be negative"))
	}

	for name, v := range map[string]string{
		"colors.player":        c.Colors.Player,
		"colors.enemy":         c.Colors.Enemy,
		"colors.player_bullet": c.Colors.PlayerBullet,
		"colors.enemy_bullet":  c.Colors.EnemyBullet,
		"colors.text":          c.Colors.Text,
	} {
		if _, ok := core.ParseColor(v); !ok {
			errs = append(errs, fmt.Errorf("%s: unknown color %q", name, v))
		}
	}

	return errors.Join(errs...)
}
