// Package registry maps game IDs to constructors so the platform can start a
// fresh game per run or SSH session without importing the game package.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// Game is what the platform drives once per frame. It holds simulation state
// only; input mapping, timing, rendering to the terminal and persistence stay
// on the platform side.
type Game interface {
	// ID names the game in score storage and on the command line.
	ID() string
	Title() string

	// Reset starts over with the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame. in.Elapsed is the simulated time; zero means
	// no time passes.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds an unstarted game; the caller resets it.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register binds id to f. It panics if id is taken, which only happens when
// two packages claim the same game at init time.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, taken := factories[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
