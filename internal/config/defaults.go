package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/danmaku.yaml
var defaultDanmakuYAML []byte

// DefaultDanmakuConfig returns the built-in tuning.
// It mirrors defaults/danmaku.yaml and is used when the embedded file cannot be parsed.
func DefaultDanmakuConfig() DanmakuConfig {
	return DanmakuConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 800,
		},
		Player: PlayerConfig{
			StartX:       0,
			StartY:       -300,
			HalfSize:     15,
			HitboxRadius: 10,
			Speed:        500,
			HP:           1,
			Attack:       0,
			FireCooldown: 100 * time.Millisecond,
		},
		Enemy: EnemyConfig{
			HP:            10,
			Attack:        1,
			HalfW:         15,
			HalfH:         15,
			SpawnCooldown: 1500 * time.Millisecond,
			FireCooldown:  time.Second,
			SpawnRange:    200,
			BiasMin:       50,
			BiasMax:       150,
			FallSpeed:     150,
			FallAccel:     50,
		},
		Bullets: BulletsConfig{
			Player: PlayerBulletConfig{
				Offset: 20,
				Speed:  800,
				HalfW:  3,
				HalfH:  8,
				Attack: 1,
			},
			Enemy: EnemyBulletConfig{
				Speed:  200,
				Radius: 6,
				Attack: 1,
			},
		},
		Colors: ColorsConfig{
			Player:       "bright-red",
			Enemy:        "magenta",
			PlayerBullet: "bright-cyan",
			EnemyBullet:  "bright-yellow",
			Text:         "white",
		},
	}
}
