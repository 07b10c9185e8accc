package tracer

import "math"

// Vec3 is a point or direction in scene space.
type Vec3 struct {
	I, J, K float64
}

// V3 is shorthand for Vec3{i, j, k}.
func V3(i, j, k float64) Vec3 { return Vec3{I: i, J: j, K: k} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.I + o.I, v.J + o.J, v.K + o.K} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.I - o.I, v.J - o.J, v.K - o.K} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.I * s, v.J * s, v.K * s}
}

func (v Vec3) Dot(o Vec3) float64 { return v.I*o.I + v.J*o.J + v.K*o.K }

// Magnitude returns the Euclidean norm.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. v must not be zero.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Magnitude())
}

// VecBetween returns the vector from a to b.
func VecBetween(a, b Vec3) Vec3 { return b.Sub(a) }

// UnitBetween returns the unit vector from a to b. a and b must differ.
func UnitBetween(a, b Vec3) Vec3 { return b.Sub(a).Normalize() }

// Color is a linear RGB triple, nominally in [0,1]. Values outside that range
// are legal until Quantize clamps them.
type Color struct {
	R, G, B float64
}

func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }
