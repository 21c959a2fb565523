package danmaku

import (
	"fmt"
	"hash/fnv"
	"slices"
)

// EntitySnapshot is the observable state of one entity.
type EntitySnapshot struct {
	Entity Entity
	Kind   Kind
	Team   Team
	X, Y   float64
	HP     int
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    State
	Paused   bool
	Score    int
	Entities []EntitySnapshot // ordered by entity id
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	es := g.world.Kinds.Entities()
	slices.Sort(es)

	snap := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Paused:   g.paused,
		Score:    g.score.Value(),
		Entities: make([]EntitySnapshot, 0, len(es)),
	}
	for _, e := range es {
		kind, _ := g.world.Kinds.Get(e)
		team, _ := g.world.Teams.Get(e)
		p, _ := g.world.Positions.Get(e)
		c, _ := g.world.Combat.Get(e)
		snap.Entities = append(snap.Entities, EntitySnapshot{
			Entity: e, Kind: kind, Team: team, X: p.X, Y: p.Y, HP: c.HP,
		})
	}
	return snap
}

// Count returns how many entities of kind k are alive.
func (s Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "T:%d;S:%d;P:%v;C:%d;", s.Tick, s.State, s.Paused, s.Score)
	for _, e := range s.Entities {
		fmt.Fprintf(h, "%d:%d:%d:%.6f:%.6f:%d,", e.Entity, e.Kind, e.Team, e.X, e.Y, e.HP)
	}
	return h.Sum64()
}
