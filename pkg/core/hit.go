package core

// HitRecord describes the nearest surface intersection found for a ray.
// The zero value means "no hit".
type HitRecord struct {
	DidHit        bool
	Point         Vec3
	Normal        Vec3 // unit length, pointing away from the surface
	T             float64
	MaterialIndex int
}
