package danmaku

import (
	"fmt"

	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// State is the lifecycle phase of the game.
type State uint8

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// allowed lists the legal edges of the lifecycle.
var allowed = map[State]State{
	StateTitle:    StatePlaying,
	StatePlaying:  StateGameOver,
	StateGameOver: StatePlaying,
}

// checkTriggers applies the input-driven transitions at the start of a frame.
func (g *Game) checkTriggers(in core.InputFrame) {
	switch g.state {
	case StateTitle:
		if in.Has(core.ActionShoot) {
			g.transition(StatePlaying)
		}
	case StateGameOver:
		if in.Has(core.ActionConfirm) {
			g.restart()
		}
	}
}

// requestTransition defers a state change to the end of the frame.
func (g *Game) requestTransition(to State) {
	g.pending, g.hasPending = to, true
}

func (g *Game) applyPending() {
	if !g.hasPending {
		return
	}
	g.hasPending = false
	g.transition(g.pending)
}

// transition runs the exit action of the current state and the entry action of the next.
func (g *Game) transition(to State) {
	from := g.state
	invariant(allowed[from] == to, "illegal transition %s -> %s", from, to)

	if from == StateTitle {
		g.world.DespawnTagged(TagText)
	}

	g.state = to
	g.paused = false
	g.transitioned = true
	g.debug("state transition", "from", from, "to", to, "score", g.score.Value(), "tick", g.tick)

	switch to {
	case StatePlaying:
		g.enterPlaying()
	case StateGameOver:
		g.enterGameOver()
	}
}

// restart clears the finished run and starts a new one.
func (g *Game) restart() {
	g.world.DespawnTagged(TagTransient | TagText)
	g.score.Reset()
	g.spawner.reset()
	g.transition(StatePlaying)
}

func (g *Game) enterTitle() {
	g.state = StateTitle
	g.spawnText("D A N M A K U", 80)
	g.spawnText("arrows/WASD move, hold SPACE to shoot", 0)
	g.spawnText("press SPACE to start", -40)
}

func (g *Game) enterPlaying() {
	p := g.cfg.Player
	g.world.Spawn(Blueprint{
		Kind:   KindPlayer,
		Tags:   TagPlayer | TagTransient,
		Pos:    pos(p.StartX, p.StartY, zPlayer),
		Shape:  Circle{Radius: p.HitboxRadius},
		Combat: &Combat{HP: p.HP, Attack: p.Attack},
		Team:   TeamPlayer,
	})
	g.world.Spawn(Blueprint{
		Kind: KindText,
		Tags: TagText | TagScoreText,
		Pos:  pos(0, g.cfg.Field.Height/2-20, zText),
		Text: scoreLabel(g.score.Value()),
	})
}

func (g *Game) enterGameOver() {
	g.world.DespawnTagged(TagBullet)
	g.spawnText("GAME OVER", 40)
	g.spawnText(fmt.Sprintf("final score: %d", g.score.Value()), 0)
	g.spawnText("press ENTER to restart", -40)
}

func (g *Game) spawnText(content string, y float64) Entity {
	return g.world.Spawn(Blueprint{
		Kind: KindText,
		Tags: TagText,
		Pos:  pos(0, y, zText),
		Text: content,
	})
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
