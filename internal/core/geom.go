// Package core provides fundamental types and utilities for skybird.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box represents an axis-aligned bounding box in world coordinates.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxFromEdges creates a box from its left, top, right and bottom edges.
func BoxFromEdges(left, top, right, bottom float64) Box {
	return Box{X: left, Y: top, W: right - left, H: bottom - top}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether the two boxes overlap.
// All four comparisons are strict, so boxes that only share an edge do not collide.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}
