// Package danmaku implements a top-down vertical shooter simulation.
//
// A Game advances one frame per Step. Every frame runs the same fixed pipeline
// (see Frame) over a World of entities: the player ship, falling enemies,
// both teams' bullets and on-screen text.
package danmaku

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-danmaku/internal/config"
	"github.com/vovakirdan/tui-danmaku/internal/core"
	"github.com/vovakirdan/tui-danmaku/internal/registry"
)

// ID is the registry identifier of the shooter.
const ID = "danmaku"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game is the shooter simulation. It is driven from a single goroutine.
type Game struct {
	cfg     config.DanmakuConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	world   *World
	spawner *Spawner
	score   Score

	state      State
	pending    State
	hasPending bool
	paused     bool

	transitioned bool
	tick         uint64
}

// New creates an uninitialized game; call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game ready to step, using explicit tuning and random source.
func NewWithConfig(cfg config.DanmakuConfig, runtime core.RuntimeConfig, rng Rand) *Game {
	g := New()
	g.init(cfg, runtime, rng)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Danmaku"
}

// SetLogger routes state transitions to l. A nil logger disables logging.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Reset loads the tuning and starts on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadDanmaku(configPath)
	if err != nil {
		g.debug("config load failed, using defaults", "path", configPath, "err", err)
	}
	g.init(cfg, runtime, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
}

func (g *Game) init(cfg config.DanmakuConfig, runtime core.RuntimeConfig, rng Rand) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.runtime = runtime
	g.world = NewWorld(palette(cfg.Colors))
	g.spawner = NewSpawner(cfg, rng)
	g.score = Score{}
	g.hasPending = false
	g.paused = false
	g.tick = 0
	g.enterTitle()
	// Title text is part of the initial scene, not an event of the first frame.
	g.world.drainEvents()
}

func palette(c config.ColorsConfig) map[Kind]core.Color {
	lookup := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}
	return map[Kind]core.Color{
		KindPlayer:       lookup(c.Player),
		KindEnemy:        lookup(c.Enemy),
		KindPlayerBullet: lookup(c.PlayerBullet),
		KindEnemyBullet:  lookup(c.EnemyBullet),
		KindText:         lookup(c.Text),
	}
}

// delta is the frame's elapsed time. Negative clock steps count as no time.
func delta(in core.InputFrame) time.Duration {
	return max(in.Elapsed, 0)
}

// Frame advances the simulation by one frame. The passes run in this order:
//
//  1. state triggers: shoot on the title screen starts a run, confirm after
//     game over restarts
//  2. while playing and not paused:
//     player movement, cooldown ticks (player fire, enemy fire, enemy spawn),
//     integration, collision and combat, then culling unless a transition is pending
//  3. score display, only when the score changed
//  4. pending transitions requested by combat
func (g *Game) Frame(in core.InputFrame) FrameResult {
	g.tick++
	g.transitioned = false
	dt := delta(in)
	secs := dt.Seconds()

	g.checkTriggers(in)

	if g.state == StatePlaying && in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.debug("pause toggled", "paused", g.paused, "tick", g.tick)
	}

	var kills int
	if g.state == StatePlaying && !g.paused {
		g.movePlayer(in, secs)

		g.spawner.tickPlayerFire(g.world, in.IsHeld(core.ActionShoot), dt)
		g.spawner.tickEnemyFire(g.world, dt)
		g.spawner.tickEnemySpawn(g.world, dt)

		integrate(g.world, secs)
		g.clampPlayer()

		var died bool
		kills, died = g.resolveCombat()
		if died {
			g.requestTransition(StateGameOver)
		}
		if !g.hasPending {
			g.cull()
		}
	}

	scoreChanged := g.score.TakeDirty()
	if scoreChanged {
		g.world.SetTaggedText(TagScoreText, scoreLabel(g.score.Value()))
	}

	g.applyPending()
	g.world.checkInvariants()

	spawned, despawned := g.world.drainEvents()
	return FrameResult{
		Tick:         g.tick,
		Spawned:      spawned,
		Despawned:    despawned,
		ScoreChanged: scoreChanged,
		Score:        g.score.Value(),
		Kills:        kills,
		State:        g.state,
		Transitioned: g.transitioned,
	}
}

// Step advances one frame and reports it to the platform.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.Frame(in)
	return core.StepResult{
		State:   g.State(),
		Started: res.Transitioned && res.State == StatePlaying,
		Ended:   res.Transitioned && res.State == StateGameOver,
		Kills:   res.Kills,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
		Phase:    g.state.String(),
		Tick:     g.tick,
	}
}

// Phase returns the lifecycle state.
func (g *Game) Phase() State {
	return g.state
}

// World exposes the entity tables, read-only by convention.
func (g *Game) World() *World {
	return g.world
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.DanmakuConfig {
	return g.cfg
}

// Visuals returns the current descriptor of every live entity, ordered by draw depth.
func (g *Game) Visuals() []Visual {
	es := g.world.Kinds.Entities()
	out := make([]Visual, 0, len(es))
	for _, e := range es {
		out = append(out, g.world.Visual(e))
	}
	sortVisuals(out)
	return out
}

func (g *Game) debug(msg string, keyvals ...any) {
	if g.logger == nil {
		return
	}
	g.logger.Debug(msg, keyvals...)
}
