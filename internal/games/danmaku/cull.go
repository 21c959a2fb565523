package danmaku

import "math"

// cull removes bullets and enemies that left the field. The player is never culled.
func (g *Game) cull() {
	w := g.world
	halfW := g.cfg.Field.Width / 2
	halfH := g.cfg.Field.Height / 2

	for _, e := range w.Tags.Entities() {
		tags, _ := w.Tags.Get(e)
		if !tags.Any(TagBullet|TagEnemy) || tags.Is(TagPlayer) {
			continue
		}
		p, _ := w.Positions.Get(e)
		if math.Abs(p.X) > halfW || math.Abs(p.Y) > halfH {
			w.Despawn(e)
		}
	}
}
