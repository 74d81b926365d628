package watchface

import (
	"image"
	"math"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in display coordinates.
// Min is inclusive and Max is exclusive, like image.Rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// LTRB creates a rectangle from its left, top, right and bottom edges.
func LTRB(left, top, right, bottom float64) Rect {
	return Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
}

// IntRect creates a rectangle from integer edges.
func IntRect(left, top, right, bottom int) Rect {
	return LTRB(float64(left), float64(top), float64(right), float64(bottom))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	out := Rect{MinX: r.MinX + d, MinY: r.MinY + d, MaxX: r.MaxX - d, MaxY: r.MaxY - d}
	if out.Empty() {
		c := r.Center()
		return Rect{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
	}
	return out
}

// Image returns the rectangle rounded outward to integer pixel edges.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(math.Floor(r.MinX)), int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)), int(math.Ceil(r.MaxY)))
}
