package core

// Geometry is the intersection oracle the renderer casts rays against. It
// owns acceleration structures and primitive tests; the renderer treats it
// as opaque. DoesHit must be consistent with GetClosestHit: if DoesHit
// reports true, a corresponding hit exists at or before ray.TMax.
type Geometry interface {
	// GetClosestHit returns the nearest intersection within [ray.TMin, ray.TMax],
	// or a record with DidHit=false if there is none.
	GetClosestHit(ray Ray) HitRecord
	// DoesHit reports whether anything intersects within [ray.TMin, ray.TMax].
	DoesHit(ray Ray) bool
}

// Material evaluates reflected radiance at a hit point. Shade is a pure
// function of the hit, the (normalized) direction toward the light, and the
// (normalized) direction toward the viewer.
type Material interface {
	Shade(hit HitRecord, lightDir, viewDir Vec3) Color
}

// Light is a scene light source.
type Light interface {
	// DirectionToLight returns the unnormalized vector from point to the
	// light; its length is the distance to the light.
	DirectionToLight(point Vec3) Vec3
	// Radiance returns the incident radiance arriving at point from the light.
	Radiance(point Vec3) Color
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
