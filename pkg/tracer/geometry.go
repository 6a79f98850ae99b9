package tracer

import "math"

// Intersect tests the ray against the primitive. On a hit with a
// non-negative time it fills hit (owned by the caller) and returns true;
// hit.Primitive is left for the caller to set.
func Intersect(p *Primitive, ray Ray, hit *Hit) bool {
	switch p.Kind {
	case KindSphere:
		return intersectSphere(p, ray, hit)
	case KindBox:
		return intersectBox(p, ray, hit)
	default:
		return false
	}
}

// intersectSphere uses the geometric (projection) solution
func intersectSphere(p *Primitive, ray Ray, hit *Hit) bool {
	radius2 := p.Radius * p.Radius
	oc := p.Center.Sub(ray.Origin)
	tca := oc.Dot(ray.Direction)
	d2 := oc.LengthSquared() - tca*tca
	if d2 > radius2 {
		return false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return false
		}
	}

	hit.Time = t0
	hit.Position = ray.At(t0)
	hit.Normal = hit.Position.Sub(p.Center).Normalize()
	return true
}

// intersectBox is the sign-aware slab test. The normal follows the axis
// whose slab produced the final entry distance, checked X, then Y, then Z.
func intersectBox(p *Primitive, ray Ray, hit *Hit) bool {
	invDir := ray.Direction.Inverse()
	sign := Vector3{X: signOf(invDir.X), Y: signOf(invDir.Y), Z: signOf(invDir.Z)}

	tmin, tmax := slab(p.Center.X, p.HalfExtents.X, sign.X, ray.Origin.X, invDir.X)
	tymin, tymax := slab(p.Center.Y, p.HalfExtents.Y, sign.Y, ray.Origin.Y, invDir.Y)

	if tmin > tymax || tymin > tmax {
		return false
	}
	normal := Vector3{X: -sign.X}
	if tymin > tmin {
		tmin = tymin
		normal = Vector3{Y: -sign.Y}
	}
	if tymax < tmax {
		tmax = tymax
	}

	tzmin, tzmax := slab(p.Center.Z, p.HalfExtents.Z, sign.Z, ray.Origin.Z, invDir.Z)

	if tmin > tzmax || tzmin > tmax {
		return false
	}
	if tzmin > tmin {
		tmin = tzmin
		normal = Vector3{Z: -sign.Z}
	}
	if tzmax < tmax {
		tmax = tzmax
	}

	t := tmin
	if t < 0 {
		t = tmax
		if t < 0 {
			return false
		}
	}

	hit.Time = t
	hit.Position = ray.At(t)
	hit.Normal = normal
	return true
}

// slab returns the near and far distances of one axis. inv may be an
// infinity; a 0*Inf product means the origin lies on the slab plane and
// is resolved as touching.
func slab(center, half, sign, origin, inv float64) (float64, float64) {
	lo := (center - sign*half - origin) * inv
	hi := (center + sign*half - origin) * inv
	if math.IsNaN(lo) {
		lo = math.Inf(-1)
	}
	if math.IsNaN(hi) {
		hi = math.Inf(1)
	}
	return lo, hi
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
