package tracer

import "math"

// MaxDistance bounds the nearest-hit search. Anything farther is a miss.
const MaxDistance = 999999.0

// Intersection is the result of a scene query. Only Hit is meaningful when
// Hit is false.
type Intersection struct {
	Hit      bool
	Position Vec3
	// Normal is unit length and points from the sphere centre through Position.
	Normal   Vec3
	Material Material
	Color    Color
}

// Intersect returns the ray parameter of the nearest forward intersection of
// the ray origin+t*dir with s. ok is false when the ray misses or the sphere
// lies entirely behind the origin. When the origin is inside the sphere the
// single forward root is returned.
func Intersect(origin, dir Vec3, s Sphere) (t float64, ok bool) {
	co := VecBetween(s.Position, origin)
	a := dir.Dot(dir)
	b := 2 * dir.Dot(co)
	c := co.Dot(co) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	if disc == 0 {
		t = -b / (2 * a)
		return t, t > 0
	}

	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	switch {
	case t1 <= 0 && t2 <= 0:
		return 0, false
	case t1 > 0 && t2 > 0:
		return math.Min(t1, t2), true
	case t1 > 0:
		return t1, true
	default:
		return t2, true
	}
}

// Trace finds the sphere nearest to origin along dir.
func (s *Scene) Trace(origin, dir Vec3) Intersection {
	closest := MaxDistance
	idx := -1
	for i := range s.spheres {
		t, ok := Intersect(origin, dir, s.spheres[i])
		if !ok || t >= closest {
			continue
		}
		closest = t
		idx = i
	}
	if idx < 0 {
		return Intersection{}
	}

	sp := &s.spheres[idx]
	pos := origin.Add(dir.Scale(closest))
	return Intersection{
		Hit:      true,
		Position: pos,
		Normal:   UnitBetween(sp.Position, pos),
		Material: sp.Material,
		Color:    sp.Color,
	}
}
