package tracer

// NearestHit returns the hit with the smallest time over all primitives.
// Equal times keep the earliest primitive in scene order.
func NearestHit(scene *Scene, ray Ray) (Hit, bool) {
	var best, candidate Hit
	found := false

	prims := scene.primitives
	for i := range prims {
		if !Intersect(&prims[i], ray, &candidate) {
			continue
		}
		if !found || candidate.Time < best.Time {
			best = candidate
			best.Primitive = i
			found = true
		}
	}

	return best, found
}

// FirstHit returns the hit on the first intersecting primitive in scene
// order, not necessarily the nearest one. It is only meant for shadow
// queries where any blocker answers the question.
func FirstHit(scene *Scene, ray Ray) (Hit, bool) {
	var hit Hit

	prims := scene.primitives
	for i := range prims {
		if Intersect(&prims[i], ray, &hit) {
			hit.Primitive = i
			return hit, true
		}
	}

	return hit, false
}
