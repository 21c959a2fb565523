package danmaku

import "github.com/vovakirdan/tui-danmaku/internal/core"

// World owns every entity and its attribute tables.
// Each frame pass receives the World by pointer; nothing else mutates it.
type World struct {
	next Entity

	Kinds         *Store[Kind]
	Positions     *Store[core.Vec3]
	Velocities    *Store[core.Vec3]
	Accelerations *Store[core.Vec3]
	Colliders     *Store[Shape]
	Combat        *Store[Combat]
	Teams         *Store[Team]
	Tags          *Store[Tags]
	Texts         *Store[Text]
	FireCooldowns *Store[*Cooldown]

	palette map[Kind]core.Color

	player    Entity
	hasPlayer bool

	spawned   []Visual
	despawned []Entity
}

// NewWorld creates an empty world drawing entities with the given palette.
func NewWorld(palette map[Kind]core.Color) *World {
	return &World{
		Kinds:         NewStore[Kind](),
		Positions:     NewStore[core.Vec3](),
		Velocities:    NewStore[core.Vec3](),
		Accelerations: NewStore[core.Vec3](),
		Colliders:     NewStore[Shape](),
		Combat:        NewStore[Combat](),
		Teams:         NewStore[Team](),
		Tags:          NewStore[Tags](),
		Texts:         NewStore[Text](),
		FireCooldowns: NewStore[*Cooldown](),
		palette:       palette,
	}
}

// Blueprint describes an entity to create. Zero fields are left unset.
type Blueprint struct {
	Kind         Kind
	Tags         Tags
	Pos          core.Vec3
	Vel          *core.Vec3
	Accel        *core.Vec3
	Shape        Shape
	Combat       *Combat
	Team         Team
	Text         string
	FireCooldown *Cooldown
}

// Spawn creates an entity from bp and records a creation event.
func (w *World) Spawn(bp Blueprint) Entity {
	w.next++
	e := w.next

	w.Kinds.Set(e, bp.Kind)
	w.Tags.Set(e, bp.Tags)
	w.Positions.Set(e, bp.Pos)
	if bp.Vel != nil {
		w.Velocities.Set(e, *bp.Vel)
	}
	if bp.Accel != nil {
		w.Accelerations.Set(e, *bp.Accel)
	}
	if bp.Shape != nil {
		w.Colliders.Set(e, bp.Shape)
	}
	if bp.Combat != nil {
		w.Combat.Set(e, *bp.Combat)
	}
	if bp.Team != TeamNone {
		w.Teams.Set(e, bp.Team)
	}
	if bp.Tags.Any(TagText) {
		w.Texts.Set(e, Text{Content: bp.Text})
	}
	if bp.FireCooldown != nil {
		w.FireCooldowns.Set(e, bp.FireCooldown)
	}

	if bp.Tags.Is(TagPlayer) {
		invariant(!w.hasPlayer, "second player spawned while %d is alive", w.player)
		w.player, w.hasPlayer = e, true
	}

	w.spawned = append(w.spawned, w.Visual(e))
	return e
}

// Despawn removes e from every table. It reports false if e was already gone.
func (w *World) Despawn(e Entity) bool {
	if !w.Kinds.Has(e) {
		return false
	}
	w.Kinds.Remove(e)
	w.Positions.Remove(e)
	w.Velocities.Remove(e)
	w.Accelerations.Remove(e)
	w.Colliders.Remove(e)
	w.Combat.Remove(e)
	w.Teams.Remove(e)
	w.Tags.Remove(e)
	w.Texts.Remove(e)
	w.FireCooldowns.Remove(e)

	if w.hasPlayer && w.player == e {
		w.hasPlayer = false
	}
	w.despawned = append(w.despawned, e)
	return true
}

// DespawnTagged removes every entity carrying any bit of mask.
func (w *World) DespawnTagged(mask Tags) int {
	n := 0
	for _, e := range w.Tags.Entities() {
		if t, _ := w.Tags.Get(e); t.Any(mask) && w.Despawn(e) {
			n++
		}
	}
	return n
}

// Alive reports whether e still exists.
func (w *World) Alive(e Entity) bool {
	return w.Kinds.Has(e)
}

// Player returns the player entity, if one is alive.
func (w *World) Player() (Entity, bool) {
	return w.player, w.hasPlayer
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.Kinds.Len()
}

// Extents returns the collider half-extents of e.
func (w *World) Extents(e Entity) (core.Extents, bool) {
	s, ok := w.Colliders.Get(e)
	if !ok {
		return core.Extents{}, false
	}
	return s.HalfExtents(), true
}

// SetTaggedText replaces the label of every text entity carrying mask.
func (w *World) SetTaggedText(mask Tags, content string) int {
	n := 0
	for _, e := range w.Texts.Entities() {
		if tags, _ := w.Tags.Get(e); !tags.Is(mask) {
			continue
		}
		w.Texts.Ptr(e).Content = content
		n++
	}
	return n
}

// Visual builds the render descriptor of e.
func (w *World) Visual(e Entity) Visual {
	kind, _ := w.Kinds.Get(e)
	pos, _ := w.Positions.Get(e)
	shape, _ := w.Colliders.Get(e)
	team, _ := w.Teams.Get(e)
	text, _ := w.Texts.Get(e)
	return Visual{
		Entity: e,
		Kind:   kind,
		Pos:    pos,
		Shape:  shape,
		Team:   team,
		Color:  w.palette[kind],
		Text:   text.Content,
	}
}

// drainEvents hands back and resets the creation and removal logs.
func (w *World) drainEvents() ([]Visual, []Entity) {
	spawned, despawned := w.spawned, w.despawned
	w.spawned, w.despawned = nil, nil
	return spawned, despawned
}

// checkInvariants asserts the structural rules that must hold between frames.
func (w *World) checkInvariants() {
	players := 0
	for _, e := range w.Tags.Entities() {
		tags, _ := w.Tags.Get(e)
		if tags.Is(TagPlayer) {
			players++
		}
	}
	invariant(players <= 1, "%d players alive", players)

	for _, e := range w.Combat.Entities() {
		c, _ := w.Combat.Get(e)
		invariant(!c.Dead(), "entity %d survived the frame with hp %d", e, c.HP)
	}
}
