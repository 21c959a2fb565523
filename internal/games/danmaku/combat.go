package danmaku

import "github.com/vovakirdan/tui-danmaku/internal/core"

// body is a snapshot of a collidable entity taken at the start of a pass.
type body struct {
	e    Entity
	team Team
	pos  core.Vec3
	ext  core.Extents
}

// collidables returns bullets and non-bullet targets that have a team, a collider and combat stats.
func collidables(w *World) (bullets, targets []body) {
	for _, e := range w.Combat.Entities() {
		team, ok := w.Teams.Get(e)
		if !ok {
			continue
		}
		ext, ok := w.Extents(e)
		if !ok {
			continue
		}
		p, _ := w.Positions.Get(e)
		tags, _ := w.Tags.Get(e)
		b := body{e: e, team: team, pos: p, ext: ext}
		if tags.Is(TagBullet) {
			bullets = append(bullets, b)
		} else {
			targets = append(targets, b)
		}
	}
	return bullets, targets
}

func overlaps(a, b body) bool {
	return core.Overlaps(a.pos, a.ext, b.pos, b.ext)
}

// resolveCombat runs both collision passes and reports kills and player death.
// Player death stops all remaining collision processing for the frame.
func (g *Game) resolveCombat() (kills int, playerDied bool) {
	w := g.world
	bullets, targets := collidables(w)

	// Bullets hit at most one opposing target each.
	for _, b := range bullets {
		if !w.Alive(b.e) {
			continue
		}
		for _, t := range targets {
			if t.team == b.team || !w.Alive(t.e) || !overlaps(b, t) {
				continue
			}
			bc, _ := w.Combat.Get(b.e)
			tc := w.Combat.Ptr(t.e)
			tc.TakeDamage(bc.Attack)
			dead := tc.Dead()
			w.Despawn(b.e)

			if dead {
				w.Despawn(t.e)
				if t.team == TeamPlayer {
					return kills, true
				}
				g.score.Add(1)
				kills++
			}
			break
		}
	}

	// Player body against enemy bodies.
	player, ok := w.Player()
	if !ok {
		return kills, false
	}
	var pb body
	for _, t := range targets {
		if t.e == player {
			pb = t
			break
		}
	}
	if pb.e != player {
		return kills, false
	}

	for _, t := range targets {
		if t.team != TeamEnemy || !w.Alive(t.e) || !overlaps(pb, t) {
			continue
		}
		invariant(t.team != pb.team, "body collision within team %s", t.team)

		pc, _ := w.Combat.Get(player)
		ec, _ := w.Combat.Get(t.e)
		pAtk, eAtk := pc.Attack, ec.Attack
		pc.TakeDamage(eAtk)
		ec.TakeDamage(pAtk)
		w.Combat.Set(player, pc)
		w.Despawn(t.e)

		if pc.Dead() {
			w.Despawn(player)
			return kills, true
		}
		if ec.Dead() {
			g.score.Add(1)
			kills++
		}
	}
	return kills, false
}
