package danmaku

import (
	"github.com/vovakirdan/tui-danmaku/internal/core"
)

func pos(x, y, z float64) core.Vec3 {
	return core.Vec3{X: x, Y: y, Z: z}
}

// inputDirection sums the held movement axes into a unit vector.
// Opposite keys cancel; diagonals are normalized so they are not faster.
func inputDirection(in core.InputFrame) core.Vec3 {
	var dir core.Vec3
	if in.IsHeld(core.ActionLeft) {
		dir.X--
	}
	if in.IsHeld(core.ActionRight) {
		dir.X++
	}
	if in.IsHeld(core.ActionUp) {
		dir.Y++
	}
	if in.IsHeld(core.ActionDown) {
		dir.Y--
	}
	return dir.Normalized()
}

// movePlayer applies held movement input to the player.
func (g *Game) movePlayer(in core.InputFrame, dt float64) {
	e, ok := g.world.Player()
	if !ok {
		return
	}
	p := g.world.Positions.Ptr(e)
	if p == nil {
		return
	}
	step := inputDirection(in).Scale(g.cfg.Player.Speed * dt)
	p.X += step.X
	p.Y += step.Y
	g.clampPlayer()
}

// clampPlayer keeps the player's visual box inside the field.
func (g *Game) clampPlayer() {
	e, ok := g.world.Player()
	if !ok {
		return
	}
	p := g.world.Positions.Ptr(e)
	if p == nil {
		return
	}
	limX := g.cfg.Field.Width/2 - g.cfg.Player.HalfSize
	limY := g.cfg.Field.Height/2 - g.cfg.Player.HalfSize
	p.X = core.ClampF(p.X, -limX, limX)
	p.Y = core.ClampF(p.Y, -limY, limY)
}

// integrate advances every moving entity with semi-implicit Euler:
// velocity picks up acceleration first, then position picks up velocity.
func integrate(w *World, dt float64) {
	for _, e := range w.Accelerations.Entities() {
		v := w.Velocities.Ptr(e)
		if v == nil {
			continue
		}
		a, _ := w.Accelerations.Get(e)
		*v = v.Add(a.Scale(dt))
	}
	for _, e := range w.Velocities.Entities() {
		p := w.Positions.Ptr(e)
		if p == nil {
			continue
		}
		v, _ := w.Velocities.Get(e)
		z := p.Z
		*p = p.Add(v.Scale(dt))
		p.Z = z
	}
}
