package tracer

// Material tags a sphere's surface. Shading does not branch on it yet.
type Material uint8

const (
	Diffuse Material = iota
	Mirror
)

func (m Material) String() string {
	switch m {
	case Diffuse:
		return "diffuse"
	case Mirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Sphere is a scene primitive.
type Sphere struct {
	Position Vec3
	Radius   float64
	Material Material
	Color    Color
}

// Scene is a fixed set of spheres lit by one point light. It is built once
// and only read afterwards, so both render units may share a *Scene.
type Scene struct {
	spheres []Sphere
	light   Vec3
}

// NewScene copies spheres into a new immutable scene.
func NewScene(light Vec3, spheres ...Sphere) *Scene {
	s := &Scene{light: light, spheres: make([]Sphere, len(spheres))}
	copy(s.spheres, spheres)
	return s
}

// DefaultScene is the reference configuration: a red ball resting on a huge
// green sphere that stands in for the ground.
func DefaultScene() *Scene {
	return NewScene(V3(100, 100, 200),
		Sphere{Position: V3(0, 0, 240), Radius: 50, Material: Diffuse, Color: RGB(1, 0, 0)},
		Sphere{Position: V3(0, -10050, 240), Radius: 10000, Material: Diffuse, Color: RGB(0, 1, 0)},
	)
}

// Spheres returns the scene's primitives. Callers must not modify the slice.
func (s *Scene) Spheres() []Sphere { return s.spheres }

// Light returns the point light position.
func (s *Scene) Light() Vec3 { return s.light }
