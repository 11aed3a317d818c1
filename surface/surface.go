// Package surface describes the geometry of a gesture-sensitive area: its bounds and the transform from the
// host's coordinate space into the area's local coordinates.
package surface

import (
	"honnef.co/go/gestures/f32"
)

// Surface is what a recognizer needs to know about the area it serves.
type Surface interface {
	// Local transforms a point from host coordinates into surface-local coordinates.
	Local(p f32.Point) f32.Point
	// Contains reports whether the surface-local point p lies within the surface.
	Contains(p f32.Point) bool
}

var _ Surface = (*Region)(nil)

// Region is a rectangular Surface. Containers that transform their children push their transforms onto the
// region while it is being laid out, the same way hit testing descends a render tree.
//
// The zero value is an empty region at the origin with the identity transform.
type Region struct {
	// Bounds is the region's extent in local coordinates.
	Bounds f32.Rectangle

	transform      f32.Affine2D
	transformStack []f32.Affine2D
}

// PushTransform applies trans, which maps host coordinates of the current level to those of the next, on top
// of the current transform.
func (r *Region) PushTransform(trans f32.Affine2D) {
	r.transformStack = append(r.transformStack, r.transform)
	r.transform = trans.Mul(r.transform)
}

// PopTransform undoes the most recent PushTransform or PushOffset.
func (r *Region) PopTransform() {
	if len(r.transformStack) > 0 {
		r.transform = r.transformStack[len(r.transformStack)-1]
		r.transformStack = r.transformStack[:len(r.transformStack)-1]
	}
}

// PushOffset moves the local origin to offset, in current coordinates.
func (r *Region) PushOffset(offset f32.Point) {
	r.PushTransform(f32.Affine2D{}.Offset(offset).Invert())
}

// SetOffset replaces all transforms with a plain offset.
func (r *Region) SetOffset(offset f32.Point) {
	r.transform = f32.Affine2D{}
	r.transformStack = r.transformStack[:0]
	r.PushOffset(offset)
}

func (r *Region) Local(p f32.Point) f32.Point {
	return r.transform.Transform(p)
}

func (r *Region) Contains(p f32.Point) bool {
	return r.Bounds.Contains(p)
}
