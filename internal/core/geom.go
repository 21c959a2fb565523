// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a position or direction in field space.
// X grows to the right, Y grows upward and Z only orders drawing.
type Vec3 struct {
	X, Y, Z float64
}

// V2 builds a vector on the drawing plane (Z = 0).
func V2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the planar length, ignoring Z.
func (v Vec3) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the planar unit vector, or the zero vector when v has no length.
// Z is dropped.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Y: v.Y / l}
}

// Extents holds half-width and half-height of a centred box.
type Extents struct {
	HalfW, HalfH float64
}

// Overlaps reports whether two centred boxes intersect.
// Touching edges do not count as overlap.
func Overlaps(a Vec3, ea Extents, b Vec3, eb Extents) bool {
	return math.Abs(a.X-b.X) < ea.HalfW+eb.HalfW &&
		math.Abs(a.Y-b.Y) < ea.HalfH+eb.HalfH
}

// Rect represents an axis-aligned box on the cell grid, used when drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
