package danmaku

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// Rand is the random source used for spawn variation.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
}

// EnemyProfile is the spawn timer and stats shared by every enemy.
type EnemyProfile struct {
	Spawn  *Cooldown
	HP     int
	Attack int
}

// Spawner gates player fire, enemy fire and enemy spawning.
type Spawner struct {
	cfg        config.DanmakuConfig
	rng        Rand
	playerFire *Cooldown
	profile    EnemyProfile
}

// NewSpawner creates a spawner with fresh timers.
func NewSpawner(cfg config.DanmakuConfig, rng Rand) *Spawner {
	return &Spawner{
		cfg:        cfg,
		rng:        rng,
		playerFire: NewCooldown(cfg.Player.FireCooldown),
		profile: EnemyProfile{
			Spawn:  NewCooldown(cfg.Enemy.SpawnCooldown),
			HP:     cfg.Enemy.HP,
			Attack: cfg.Enemy.Attack,
		},
	}
}

func (s *Spawner) reset() {
	s.playerFire.Reset()
	s.profile.Spawn.Reset()
}

// tickPlayerFire fires one bullet upward when shoot is held and the cooldown is ready.
func (s *Spawner) tickPlayerFire(w *World, shooting bool, dt time.Duration) {
	ready := s.playerFire.Tick(dt)
	if !ready || !shooting {
		return
	}
	e, ok := w.Player()
	if !ok {
		return
	}
	p, _ := w.Positions.Get(e)
	b := s.cfg.Bullets.Player
	vel := core.V2(0, b.Speed)
	w.Spawn(Blueprint{
		Kind:   KindPlayerBullet,
		Tags:   TagBullet | TagTransient,
		Pos:    pos(p.X, p.Y+b.Offset, zBullet),
		Vel:    &vel,
		Shape:  Rect{HalfW: b.HalfW, HalfH: b.HalfH},
		Combat: &Combat{HP: 1, Attack: b.Attack},
		Team:   TeamPlayer,
	})
}

// tickEnemyFire advances every enemy's own cooldown and fires aimed shots at the player.
func (s *Spawner) tickEnemyFire(w *World, dt time.Duration) {
	player, hasPlayer := w.Player()
	var target core.Vec3
	if hasPlayer {
		target, _ = w.Positions.Get(player)
	}

	for _, e := range w.FireCooldowns.Entities() {
		cd, _ := w.FireCooldowns.Get(e)
		if !cd.Tick(dt) || !hasPlayer {
			continue
		}
		from, _ := w.Positions.Get(e)
		b := s.cfg.Bullets.Enemy
		vel := aimAt(from, target).Scale(b.Speed)
		w.Spawn(Blueprint{
			Kind:   KindEnemyBullet,
			Tags:   TagBullet | TagTransient,
			Pos:    pos(from.X, from.Y, zBullet),
			Vel:    &vel,
			Shape:  Circle{Radius: b.Radius},
			Combat: &Combat{HP: 1, Attack: b.Attack},
			Team:   TeamEnemy,
		})
	}
}

// aimAt returns the unit direction from one point to another, straight down when they coincide.
func aimAt(from, to core.Vec3) core.Vec3 {
	d := to.Sub(from)
	d.Z = 0
	if d.X == 0 && d.Y == 0 {
		return core.V2(0, -1)
	}
	return d.Normalized()
}

// tickEnemySpawn drops a new enemy at the top of the field when the shared timer is ready.
func (s *Spawner) tickEnemySpawn(w *World, dt time.Duration) {
	if !s.profile.Spawn.Tick(dt) {
		return
	}
	offset, bias := s.drawSpawn()
	s.spawnEnemy(w, offset, bias)
}

// drawSpawn picks a horizontal spawn offset and an inward drift velocity.
// The drift opposes the offset so enemies curve back toward the centre.
func (s *Spawner) drawSpawn() (offset, bias float64) {
	e := s.cfg.Enemy
	offset = (clampUnit(s.rng.Float64())*2 - 1) * e.SpawnRange
	magnitude := e.BiasMin + clampUnit(s.rng.Float64())*(e.BiasMax-e.BiasMin)
	switch {
	case offset > 0:
		bias = -magnitude
	case offset < 0:
		bias = magnitude
	}
	return offset, bias
}

func (s *Spawner) spawnEnemy(w *World, offset, bias float64) Entity {
	e := s.cfg.Enemy
	vel := core.V2(bias, -e.FallSpeed)
	accel := core.V2(0, -e.FallAccel)
	return w.Spawn(Blueprint{
		Kind:         KindEnemy,
		Tags:         TagEnemy | TagTransient,
		Pos:          pos(offset, s.cfg.Field.Height/2, zEnemy),
		Vel:          &vel,
		Accel:        &accel,
		Shape:        Rect{HalfW: e.HalfW, HalfH: e.HalfH},
		Combat:       &Combat{HP: s.profile.HP, Attack: s.profile.Attack},
		Team:         TeamEnemy,
		FireCooldown: NewCooldown(e.FireCooldown),
	})
}

// clampUnit guards scripted sources that stray outside [0, 1).
func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return core.ClampF(v, 0, 1)
}
