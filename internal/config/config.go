// Package config provides YAML-based tuning for the shooter: play-field size,
// player handling, enemy profile, bullet parameters and palette.
package config

import "time"

// DanmakuConfig contains all tunable parameters of the simulation.
type DanmakuConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Bullets BulletsConfig `yaml:"bullets"`
	Colors  ColorsConfig  `yaml:"colors"`
}

// FieldConfig is the play-field rectangle, centred on the origin.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX       float64       `yaml:"start_x"`
	StartY       float64       `yaml:"start_y"`
	HalfSize     float64       `yaml:"half_size"`     // visual half-size, used as clamp inset
	HitboxRadius float64       `yaml:"hitbox_radius"` // circle collider
	Speed        float64       `yaml:"speed"`         // units per second
	HP           int           `yaml:"hp"`
	Attack       int           `yaml:"attack"` // body damage dealt to enemies on contact
	FireCooldown time.Duration `yaml:"fire_cooldown"`
}

// EnemyConfig defines the single enemy profile and its spawn pattern.
type EnemyConfig struct {
	HP            int           `yaml:"hp"`
	Attack        int           `yaml:"attack"`
	HalfW         float64       `yaml:"half_w"`
	HalfH         float64       `yaml:"half_h"`
	SpawnCooldown time.Duration `yaml:"spawn_cooldown"`
	FireCooldown  time.Duration `yaml:"fire_cooldown"`
	SpawnRange    float64       `yaml:"spawn_range"` // x offset drawn from [-range, range]
	BiasMin       float64       `yaml:"bias_min"`    // inward drift magnitude range
	BiasMax       float64       `yaml:"bias_max"`
	FallSpeed     float64       `yaml:"fall_speed"`
	FallAccel     float64       `yaml:"fall_accel"`
}

// BulletsConfig groups both teams' projectiles.
type BulletsConfig struct {
	Player PlayerBulletConfig `yaml:"player"`
	Enemy  EnemyBulletConfig  `yaml:"enemy"`
}

// PlayerBulletConfig defines shots fired by the player.
type PlayerBulletConfig struct {
	Offset float64 `yaml:"offset"` // spawn distance above the player
	Speed  float64 `yaml:"speed"`
	HalfW  float64 `yaml:"half_w"`
	HalfH  float64 `yaml:"half_h"`
	Attack int     `yaml:"attack"`
}

// EnemyBulletConfig defines aimed shots fired by enemies.
type EnemyBulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Attack int     `yaml:"attack"`
}

// ColorsConfig names the palette entry of every visual kind.
// Names are the ones core.Color.String returns.
type ColorsConfig struct {
	Player       string `yaml:"player"`
	Enemy        string `yaml:"enemy"`
	PlayerBullet string `yaml:"player_bullet"`
	EnemyBullet  string `yaml:"enemy_bullet"`
	Text         string `yaml:"text"`
}
