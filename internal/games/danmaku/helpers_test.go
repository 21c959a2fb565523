package danmaku

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// scriptedRand replays a fixed sequence, wrapping around at the end.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// quietConfig is the default tuning with enemy spawning and firing pushed out of reach,
// so tests place every entity themselves.
func quietConfig() config.DanmakuConfig {
	cfg := config.DefaultDanmakuConfig()
	cfg.Enemy.SpawnCooldown = time.Hour
	cfg.Enemy.FireCooldown = time.Hour
	return cfg
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewWithConfig(quietConfig(), core.RuntimeConfig{TickRate: 60, Seed: 1}, &scriptedRand{vals: []float64{0.5}})
}

// startedGame returns a game already in the Playing state.
func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	if res := g.Frame(pressed(core.ActionShoot)); res.State != StatePlaying {
		t.Fatalf("state after shoot on title = %s, expected playing", res.State)
	}
	return g
}

// frameTime is the elapsed time of every helper frame: one tick at 60 Hz.
const frameTime = time.Second / 60

func frame() core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = frameTime
	return in
}

func pressed(actions ...core.Action) core.InputFrame {
	in := frame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	in := frame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func idle() core.InputFrame {
	return frame()
}

func withElapsed(in core.InputFrame, d time.Duration) core.InputFrame {
	in.Elapsed = d
	return in
}

func playerPos(t *testing.T, g *Game) core.Vec3 {
	t.Helper()
	e, ok := g.world.Player()
	if !ok {
		t.Fatal("no player alive")
	}
	p, _ := g.world.Positions.Get(e)
	return p
}

// placeEnemy spawns a stationary enemy with the configured profile.
func placeEnemy(g *Game, x, y float64) Entity {
	e := g.spawner.spawnEnemy(g.world, x, 0)
	g.world.Positions.Set(e, pos(x, y, zEnemy))
	g.world.Velocities.Set(e, core.Vec3{})
	g.world.Accelerations.Remove(e)
	return e
}

// placeBullet spawns a stationary bullet of the given team.
func placeBullet(g *Game, team Team, x, y float64) Entity {
	still := core.Vec3{}
	bp := Blueprint{
		Tags:   TagBullet | TagTransient,
		Pos:    pos(x, y, zBullet),
		Vel:    &still,
		Combat: &Combat{HP: 1, Attack: 1},
		Team:   team,
	}
	if team == TeamPlayer {
		bp.Kind = KindPlayerBullet
		bp.Shape = Rect{HalfW: 3, HalfH: 8}
	} else {
		bp.Kind = KindEnemyBullet
		bp.Shape = Circle{Radius: 6}
	}
	return g.world.Spawn(bp)
}

func countTagged(g *Game, mask Tags) int {
	n := 0
	for _, e := range g.world.Tags.Entities() {
		if tags, _ := g.world.Tags.Get(e); tags.Any(mask) {
			n++
		}
	}
	return n
}

func hp(t *testing.T, g *Game, e Entity) int {
	t.Helper()
	c, ok := g.world.Combat.Get(e)
	if !ok {
		t.Fatalf("entity %d has no combat stats", e)
	}
	return c.HP
}

// scoreText returns the label of the on-screen score.
func scoreText(t *testing.T, g *Game) string {
	t.Helper()
	for _, e := range g.world.Texts.Entities() {
		if tags, _ := g.world.Tags.Get(e); tags.Is(TagScoreText) {
			txt, _ := g.world.Texts.Get(e)
			return txt.Content
		}
	}
	t.Fatal("no score text on screen")
	return ""
}
