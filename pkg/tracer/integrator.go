package tracer

import "math"

// Shading constants. They are compiled in; Params only exists so that
// callers and tests can name them.
const (
	MaxDepth             = 4
	ShadowBias           = 1e-3
	AmbientFactor        = 0.01
	AttenuationLinear    = 0.045
	AttenuationQuadratic = 0.0075
	ReflectionDecay      = 0.9
	SpecularExponent     = 256.0
)

// Params holds the shading constants used by an Integrator
type Params struct {
	AmbientFactor        float64
	AttenuationLinear    float64
	AttenuationQuadratic float64
	ReflectionDecay      float64
	ShadowBias           float64
	Specular             bool
	SpecularExponent     float64
}

// DefaultParams returns the compiled-in shading constants
func DefaultParams() Params {
	return Params{
		AmbientFactor:        AmbientFactor,
		AttenuationLinear:    AttenuationLinear,
		AttenuationQuadratic: AttenuationQuadratic,
		ReflectionDecay:      ReflectionDecay,
		ShadowBias:           ShadowBias,
		Specular:             true,
		SpecularExponent:     SpecularExponent,
	}
}

// PathResult describes one traced primary path
type PathResult struct {
	Color     Color
	Bounces   int     // reflection rays that replaced the active ray
	Intensity float64 // intensity of the last segment traced
}

// Integrator shades primary rays with one shadow sample per hit and a
// bounded chain of mirror reflections. It holds no per-ray state and is
// safe for concurrent use.
type Integrator struct {
	params Params
}

// NewIntegrator creates an integrator with the given constants
func NewIntegrator(params Params) *Integrator {
	return &Integrator{params: params}
}

// Params returns the integrator constants
func (in *Integrator) Params() Params {
	return in.params
}

// Shade returns the color seen along ray
func (in *Integrator) Shade(ray Ray, scene *Scene, maxDepth int) Color {
	return in.Trace(ray, scene, maxDepth).Color
}

// Trace follows ray through at most maxDepth reflections. Each bounce
// replaces the active ray, so the loop runs in constant stack space and
// ends on a miss or when the bounce budget is spent.
func (in *Integrator) Trace(ray Ray, scene *Scene, maxDepth int) PathResult {
	var result PathResult
	var color Color

	light := scene.Light()
	lightIndex := scene.LightIndex()
	remaining := maxDepth

	ray.Intensity = 1
	for {
		result.Intensity = ray.Intensity

		hit, ok := NearestHit(scene, ray)
		if !ok {
			break
		}
		surface := scene.Primitive(hit.Primitive)

		// Back off along the incoming ray so secondary rays leave the surface
		origin := hit.Position.FMA(-in.params.ShadowBias, ray.Direction)

		shadow := Ray{
			Origin:    origin,
			Direction: light.Center.Sub(hit.Position).Normalize(),
			Intensity: ray.Intensity,
		}
		shadow.Color = surface.Color.Mul(shadow.Intensity)

		color = color.Add(shadow.Color.Mul(in.params.AmbientFactor))

		if lightHit, ok := FirstHit(scene, shadow); ok && lightHit.Primitive == lightIndex {
			color = color.Add(in.direct(ray, hit, shadow, lightHit.Time, light))
		}

		if remaining <= 0 {
			break
		}
		ray = Ray{
			Origin:    origin,
			Direction: ray.Direction.Reflect(hit.Normal),
			Intensity: ray.Intensity * in.params.ReflectionDecay,
		}
		remaining--
		result.Bounces++
	}

	result.Color = color
	return result
}

// direct returns the diffuse and specular light reaching hit along the
// unoccluded shadow ray, distance away from the light.
func (in *Integrator) direct(ray Ray, hit Hit, shadow Ray, distance float64, light *Primitive) Color {
	attenuation := 1 / (1 + in.params.AttenuationLinear*distance + in.params.AttenuationQuadratic*distance*distance)

	lambertian := math.Max(shadow.Direction.Dot(hit.Normal), 0)
	if lambertian <= 0 {
		return Color{}
	}

	lit := shadow.Color.MulVec(light.Color)
	color := lit.Mul(lambertian * attenuation)

	if in.params.Specular {
		toEye := ray.Origin.Sub(hit.Position).Normalize()
		half := toEye.Add(shadow.Direction).Normalize()
		if specAngle := half.Dot(hit.Normal); specAngle > 0 {
			color = color.Add(lit.Mul(attenuation * math.Pow(specAngle, in.params.SpecularExponent)))
		}
	}

	return color
}
