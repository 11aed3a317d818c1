package f32

import (
	"fmt"
	"image"
	"math"
	"time"

	"gioui.org/f32"
)

type Point = f32.Point
type Affine2D = f32.Affine2D

var NewAffine2D = f32.NewAffine2D
var Pt = f32.Pt

func FPt(pt image.Point) Point {
	return Point{
		X: float32(pt.X),
		Y: float32(pt.Y),
	}
}

// Magnitude treats p as a vector and returns its magnitude.
func Magnitude(p Point) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float32 {
	return Magnitude(b.Sub(a))
}

// DistanceSquared returns the squared distance between a and b. Use it for threshold comparisons, which don't
// need the square root.
func DistanceSquared(a, b Point) float32 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: min(a.X, b.X) + abs(a.X-b.X)/2,
		Y: min(a.Y, b.Y) + abs(a.Y-b.Y)/2,
	}
}

// Horizontal reports whether the displacement d is predominantly horizontal. Ties count as vertical.
func Horizontal(d Point) bool {
	return abs(d.X) > abs(d.Y)
}

// Velocity converts a distance traveled over dt into length units per second, divided by density. With
// density in pixels per inch the result is in inches per second. A non-positive dt or density yields 0.
func Velocity(distance float32, dt time.Duration, density float32) float32 {
	if dt <= 0 || density <= 0 {
		return 0
	}
	return distance / (float32(dt.Seconds()) * density)
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// String return a string representation of r.
func (r Rectangle) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// Rect is a shorthand for Rectangle{Point{x0, y0}, Point{x1, y1}}.
// The returned Rectangle has x0 and y0 swapped if necessary so that
// it's correctly formed.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rectangle{Point{X: x0, Y: y0}, Point{X: x1, Y: y1}}
}

// FRect converts an integer rectangle, such as a Gio constraint, to a Rectangle.
func FRect(r image.Rectangle) Rectangle {
	return Rectangle{Min: FPt(r.Min), Max: FPt(r.Max)}
}

// Size returns r's width and height.
func (r Rectangle) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y &&
		p.X < r.Max.X && p.Y < r.Max.Y
}

func Clamp(v, minV, maxV float32) float32 {
	return min(maxV, max(minV, v))
}
