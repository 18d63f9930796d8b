// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

// Rect is an integer rectangle, stored as two corner points. Extents
// may be negative, which callers use to express flipped output.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// W returns the (possibly negative) width.
func (r Rect) W() int { return r.X1 - r.X0 }

// H returns the (possibly negative) height.
func (r Rect) H() int { return r.Y1 - r.Y0 }

// Normalized returns r with its corner points ordered so that both
// extents are non-negative.
func (r Rect) Normalized() Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// RectF is a float rectangle, stored as two corner points. Swapped
// endpoints express an axis flip.
type RectF struct {
	X0, Y0, X1, Y1 float32
}

// W returns the (possibly negative) width.
func (r RectF) W() float32 { return r.X1 - r.X0 }

// H returns the (possibly negative) height.
func (r RectF) H() float32 { return r.Y1 - r.Y0 }

// Normalized returns r with its corner points ordered so that both
// extents are non-negative.
func (r RectF) Normalized() RectF {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Round returns the integer rectangle closest to r.
func (r RectF) Round() Rect {
	return Rect{
		X0: int(r.X0 + 0.5),
		Y0: int(r.Y0 + 0.5),
		X1: int(r.X1 + 0.5),
		Y1: int(r.Y1 + 0.5),
	}
}
