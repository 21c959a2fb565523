package danmaku

import "github.com/vovakirdan/tui-danmaku/internal/core"

// Visual is what a renderer needs to materialize an entity.
type Visual struct {
	Entity Entity
	Kind   Kind
	Pos    core.Vec3
	Shape  Shape // nil for text
	Team   Team
	Color  core.Color
	Text   string
}

// FrameResult is everything a frame produced for its observers.
type FrameResult struct {
	Tick uint64

	// Spawned holds a descriptor for each entity created this frame, in creation order.
	Spawned []Visual
	// Despawned lists entities removed this frame, in removal order.
	Despawned []Entity

	// ScoreChanged is set when the score display was refreshed; Score is always current.
	ScoreChanged bool
	Score        int

	// Kills counts enemies destroyed this frame.
	Kills int

	State        State
	Transitioned bool
}
