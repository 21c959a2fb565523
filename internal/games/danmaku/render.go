package danmaku

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

var glyphs = map[Kind]rune{
	KindPlayer:       '▲',
	KindEnemy:        '▼',
	KindPlayerBullet: '│',
	KindEnemyBullet:  '•',
}

func sortVisuals(vs []Visual) {
	slices.SortFunc(vs, func(a, b Visual) int {
		if a.Pos.Z != b.Pos.Z {
			if a.Pos.Z < b.Pos.Z {
				return -1
			}
			return 1
		}
		return int(a.Entity) - int(b.Entity)
	})
}

// Viewport maps field coordinates (origin at the centre, y up) onto screen cells.
type Viewport struct {
	Box            core.Rect // field outline, including the border
	fieldW, fieldH float64
}

// NewViewport fits the field into a w×h screen, keeping its proportions.
func NewViewport(fieldW, fieldH float64, w, h int) Viewport {
	boxH := h
	boxW := int(math.Round(float64(boxH-2)*fieldW/fieldH*cellAspect)) + 2
	if boxW > w {
		boxW = w
		boxH = int(math.Round(float64(boxW-2)*fieldH/fieldW/cellAspect)) + 2
	}
	boxW = core.Max(boxW, 3)
	boxH = core.Max(boxH, 3)
	return Viewport{
		Box:    core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// Cell returns the screen cell of a field position. Positions on the field edge stay inside the border.
func (v Viewport) Cell(p core.Vec3) (int, int) {
	innerW := v.Box.W - 2
	innerH := v.Box.H - 2
	fx := (p.X + v.fieldW/2) / v.fieldW
	fy := (v.fieldH/2 - p.Y) / v.fieldH
	x := core.Clamp(int(fx*float64(innerW)), 0, innerW-1)
	y := core.Clamp(int(fy*float64(innerH)), 0, innerH-1)
	return v.Box.X + 1 + x, v.Box.Y + 1 + y
}

// Render draws the field border and every live entity into dst.
func (g *Game) Render(dst *core.Screen) {
	vp := NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst.Width(), dst.Height())
	dst.DrawBox(vp.Box, core.ColorGray)

	for _, v := range g.Visuals() {
		x, y := vp.Cell(v.Pos)
		if v.Kind == KindText {
			dst.DrawTextColored(x-len([]rune(v.Text))/2, y, v.Text, v.Color)
			continue
		}
		dst.SetColored(x, y, glyphs[v.Kind], v.Color)
	}

	if g.paused {
		dst.DrawTextCentered(vp.Box.Y+vp.Box.H/2, " PAUSED ", core.ColorBrightWhite)
	}
}
