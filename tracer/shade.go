package tracer

// Reference configuration.
const (
	DefaultFocalLength       = 240.0
	DefaultShadowBias        = 0.0001
	DefaultShadowAttenuation = 0.8
)

// Shader turns screen-space pixel coordinates into colours for one scene.
// A Shader holds no mutable state and is safe for concurrent use.
type Shader struct {
	Scene *Scene

	// FocalLength is the distance from the eye to the image plane along +K.
	FocalLength float64
	// ShadowBias offsets shadow-ray origins along the surface normal so the
	// ray does not re-hit its own surface.
	ShadowBias float64
	// ShadowAttenuation scales the lit colour of occluded points.
	ShadowAttenuation float64
	Background        Color
}

// DefaultShader returns a Shader with the reference camera and shadow
// settings and a black background.
func DefaultShader(scene *Scene) *Shader {
	return &Shader{
		Scene:             scene,
		FocalLength:       DefaultFocalLength,
		ShadowBias:        DefaultShadowBias,
		ShadowAttenuation: DefaultShadowAttenuation,
	}
}

// PrimaryRay returns the camera ray through screen point (x, y), where x grows
// rightward, y grows upward and (0, 0) is the image centre.
func (sh *Shader) PrimaryRay(x, y float64) (origin, dir Vec3) {
	return Vec3{}, V3(x, y, sh.FocalLength).Normalize()
}

// PixelColor shades the pixel at screen point (x, y).
func (sh *Shader) PixelColor(x, y float64) Color {
	return sh.Shade(sh.PrimaryRay(x, y))
}

// Shade returns the colour seen along a ray. A hit surface gets the
// half-Lambert term (N.L+1)/2 and is dimmed when anything lies between it
// and the light. The shadow ray has no length limit, so geometry behind the
// light also counts as an occluder.
func (sh *Shader) Shade(origin, dir Vec3) Color {
	hit := sh.Scene.Trace(origin, dir)
	if !hit.Hit {
		return sh.Background
	}

	toLight := UnitBetween(hit.Position, sh.Scene.Light())
	lit := hit.Color.Scale((hit.Normal.Dot(toLight) + 1) / 2)

	from := hit.Position.Add(hit.Normal.Scale(sh.ShadowBias))
	if sh.Scene.Trace(from, toLight).Hit {
		return lit.Scale(sh.ShadowAttenuation)
	}
	return lit
}
