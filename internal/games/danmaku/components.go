package danmaku

import "github.com/vovakirdan/tui-danmaku/internal/core"

// Shape is a collider. The set of shapes is closed: Circle and Rect.
type Shape interface {
	HalfExtents() core.Extents
	shape()
}

// Circle is approximated by its bounding square for overlap tests.
type Circle struct {
	Radius float64
}

func (c Circle) HalfExtents() core.Extents {
	return core.Extents{HalfW: c.Radius, HalfH: c.Radius}
}

func (Circle) shape() {}

// Rect is an axis-aligned rectangle given by half-width and half-height.
type Rect struct {
	HalfW, HalfH float64
}

func (r Rect) HalfExtents() core.Extents {
	return core.Extents{HalfW: r.HalfW, HalfH: r.HalfH}
}

func (Rect) shape() {}

// Combat is the health and damage of an entity that can be hit.
type Combat struct {
	HP         int
	Attack     int
	Invincible bool
}

// TakeDamage lowers hp by n unless the entity is invincible.
func (c *Combat) TakeDamage(n int) {
	if c.Invincible {
		return
	}
	c.HP -= n
}

// Dead reports whether hp has dropped to zero or below.
func (c Combat) Dead() bool {
	return c.HP <= 0
}

// Team is the side an entity fights for. It is fixed at spawn.
type Team uint8

const (
	TeamNone Team = iota
	TeamPlayer
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Tags is a bitmask of entity roles.
type Tags uint8

const (
	TagPlayer Tags = 1 << iota
	TagEnemy
	TagBullet
	TagTransient // in-run entity, cleared on restart
	TagText
	TagScoreText
)

// Is reports whether every bit of mask is set.
func (t Tags) Is(mask Tags) bool {
	return t&mask == mask
}

// Any reports whether at least one bit of mask is set.
func (t Tags) Any(mask Tags) bool {
	return t&mask != 0
}

// Text is a label drawn centred on the entity position.
type Text struct {
	Content string
}

// Kind is what the render collaborator should draw for an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Draw order along z.
const (
	zEnemy  = 1
	zBullet = 2
	zPlayer = 3
	zText   = 10
)
