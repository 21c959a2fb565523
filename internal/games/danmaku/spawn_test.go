package danmaku

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/core"
)

func TestSpawnBiasOpposesOffset(t *testing.T) {
	tests := []struct {
		name       string
		draws      []float64
		wantOffset float64
		wantBias   float64
	}{
		{"right half drifts left (low bias)", []float64{0.875, 0}, 150, -50},
		{"right half drifts left (high bias)", []float64{0.875, 0.5}, 150, -100},
		{"left half drifts right", []float64{0.125, 0.5}, -150, 100},
		{"centre has no drift", []float64{0.5, 0.9}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(config.DefaultDanmakuConfig(), &scriptedRand{vals: tc.draws})
			offset, bias := s.drawSpawn()
			if math.Abs(offset-tc.wantOffset) > 1e-9 {
				t.Errorf("offset = %f, expected %f", offset, tc.wantOffset)
			}
			if math.Abs(bias-tc.wantBias) > 1e-9 {
				t.Errorf("bias = %f, expected %f", bias, tc.wantBias)
			}
		})
	}
}

func TestSpawnBiasNeverOutward(t *testing.T) {
	cfg := config.DefaultDanmakuConfig()
	for i := 0; i <= 100; i++ {
		u := float64(i) / 101
		for _, v := range []float64{0, 0.25, 0.75, 0.999} {
			s := NewSpawner(cfg, &scriptedRand{vals: []float64{u, v}})
			offset, bias := s.drawSpawn()
			if offset*bias > 0 {
				t.Fatalf("offset %f drifts outward with bias %f", offset, bias)
			}
			if offset != 0 && (math.Abs(bias) < cfg.Enemy.BiasMin || math.Abs(bias) > cfg.Enemy.BiasMax) {
				t.Fatalf("bias magnitude %f outside [%f, %f]", math.Abs(bias), cfg.Enemy.BiasMin, cfg.Enemy.BiasMax)
			}
		}
	}
}

func TestEnemySpawnsAtTopEdge(t *testing.T) {
	cfg := config.DefaultDanmakuConfig()
	w := NewWorld(nil)
	s := NewSpawner(cfg, &scriptedRand{vals: []float64{0.875, 0}})

	s.tickEnemySpawn(w, cfg.Enemy.SpawnCooldown-time.Millisecond)
	if w.Len() != 0 {
		t.Fatal("enemy spawned before the cooldown completed")
	}
	s.tickEnemySpawn(w, time.Millisecond)
	if w.Len() != 1 {
		t.Fatalf("%d entities after the cooldown, expected 1 enemy", w.Len())
	}

	e := w.Kinds.Entities()[0]
	p, _ := w.Positions.Get(e)
	v, _ := w.Velocities.Get(e)
	a, _ := w.Accelerations.Get(e)
	c, _ := w.Combat.Get(e)
	team, _ := w.Teams.Get(e)
	shape, _ := w.Colliders.Get(e)

	if p.X != 150 || p.Y != 400 {
		t.Errorf("spawned at (%f, %f), expected (150, 400)", p.X, p.Y)
	}
	if v != core.V2(-50, -150) {
		t.Errorf("velocity = %+v, expected (-50, -150)", v)
	}
	if a != core.V2(0, -50) {
		t.Errorf("acceleration = %+v, expected (0, -50)", a)
	}
	if c.HP != 10 || c.Attack != 1 || team != TeamEnemy {
		t.Errorf("combat = %+v team = %s", c, team)
	}
	if _, ok := shape.(Rect); !ok {
		t.Errorf("collider = %T, expected Rect", shape)
	}
	if !w.FireCooldowns.Has(e) {
		t.Error("enemy has no fire cooldown")
	}
}

func TestPlayerFireNeedsShootHeld(t *testing.T) {
	g := startedGame(t)
	dt := 100 * time.Millisecond

	g.Frame(withElapsed(idle(), dt))
	if n := countTagged(g, TagBullet); n != 0 {
		t.Fatalf("%d bullets without shooting", n)
	}

	res := g.Frame(withElapsed(held(core.ActionShoot), dt))
	var bullet *Visual
	for i := range res.Spawned {
		if res.Spawned[i].Kind == KindPlayerBullet {
			bullet = &res.Spawned[i]
		}
	}
	if bullet == nil {
		t.Fatal("no player bullet fired")
	}
	p := playerPos(t, g)
	if bullet.Pos.X != p.X || bullet.Pos.Y != p.Y+20 {
		t.Errorf("bullet spawned at (%f, %f), expected (%f, %f)", bullet.Pos.X, bullet.Pos.Y, p.X, p.Y+20)
	}
	if bullet.Team != TeamPlayer {
		t.Errorf("bullet team = %s", bullet.Team)
	}
	v, _ := g.world.Velocities.Get(bullet.Entity)
	if v != core.V2(0, 800) {
		t.Errorf("bullet velocity = %+v, expected straight up at 800", v)
	}
}

func TestPlayerFireRate(t *testing.T) {
	g := startedGame(t)
	fired := 0
	for i := 0; i < 60; i++ {
		res := g.Frame(withElapsed(held(core.ActionShoot), 10*time.Millisecond))
		for _, v := range res.Spawned {
			if v.Kind == KindPlayerBullet {
				fired++
			}
		}
	}
	// 600ms at one shot per 100ms, plus the 1/60s already on the clock from the start frame.
	if fired != 6 {
		t.Errorf("fired %d bullets in 600ms, expected 6", fired)
	}
}

func TestEnemyFireAimsAtPlayer(t *testing.T) {
	g := startedGame(t)
	enemy := placeEnemy(g, 200, 100)
	g.world.FireCooldowns.Set(enemy, NewCooldown(10*time.Millisecond))

	res := g.Frame(withElapsed(idle(), 10*time.Millisecond))

	var shot *Visual
	for i := range res.Spawned {
		if res.Spawned[i].Kind == KindEnemyBullet {
			shot = &res.Spawned[i]
		}
	}
	if shot == nil {
		t.Fatal("enemy did not fire")
	}
	if _, ok := shot.Shape.(Circle); !ok || shot.Team != TeamEnemy {
		t.Errorf("enemy bullet = %+v", *shot)
	}

	v, _ := g.world.Velocities.Get(shot.Entity)
	want := core.V2(-200, -400).Normalized().Scale(200)
	if math.Abs(v.X-want.X) > 1e-9 || math.Abs(v.Y-want.Y) > 1e-9 {
		t.Errorf("bullet velocity = %+v, expected %+v", v, want)
	}
}

func TestEnemyFireWithoutPlayer(t *testing.T) {
	cfg := config.DefaultDanmakuConfig()
	w := NewWorld(nil)
	s := NewSpawner(cfg, &scriptedRand{vals: []float64{0.5}})
	e := s.spawnEnemy(w, 0, 0)
	cd, _ := w.FireCooldowns.Get(e)

	s.tickEnemyFire(w, cfg.Enemy.FireCooldown)

	if w.Len() != 1 {
		t.Errorf("%d entities, expected no bullet without a player", w.Len())
	}
	if cd.Elapsed() != 0 || cd.Finished() != 1 {
		t.Errorf("cooldown should still tick without a target: elapsed %v finished %d", cd.Elapsed(), cd.Finished())
	}
}

func TestAimAtCoincidentPointsDown(t *testing.T) {
	got := aimAt(core.V2(10, 10), core.V2(10, 10))
	if got != core.V2(0, -1) {
		t.Errorf("aimAt(same point) = %+v, expected (0, -1)", got)
	}
}
