package vitrine

import "math"

// length returns the Euclidean length of v.
func length(v Vec3) float64 {
	return math.Sqrt(v.Dot(v))
}

// normalize returns v scaled to unit length, or the zero vector if v is
// degenerate.
func normalize(v Vec3) Vec3 {
	l := length(v)
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// lookAtRotation returns the Euler rotation (pitch, yaw, 0) that aims the
// local +Z axis of a tile at `from` toward `target`, keeping the tile
// upright (no roll). A degenerate direction yields the identity rotation.
func lookAtRotation(from, target Vec3) Vec3 {
	d := target.Sub(from)
	horiz := math.Hypot(d.X, d.Z)
	if horiz < 1e-12 && math.Abs(d.Y) < 1e-12 {
		return Vec3{}
	}
	yaw := math.Atan2(d.X, d.Z)
	pitch := math.Atan2(-d.Y, horiz)
	return Vec3{X: pitch, Y: yaw}
}

// rotateEuler rotates v by the Euler angles in rot, applied X then Y
// then Z. This matches how tile corner offsets are oriented by a Pose.
func rotateEuler(v, rot Vec3) Vec3 {
	// X axis (pitch)
	sin, cos := math.Sincos(rot.X)
	v = Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
	// Y axis (yaw)
	sin, cos = math.Sincos(rot.Y)
	v = Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
	// Z axis (roll)
	sin, cos = math.Sincos(rot.Z)
	return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// lerpVec3 linearly interpolates between a and b at parameter t.
func lerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// lerpPose interpolates position and rotation independently, per axis.
// Rotation interpolation is linear per Euler axis; layout targets are
// constructed so start and end orientations agree at t=0 and t=1, which
// is the only contract the engine guarantees for the path between them.
func lerpPose(a, b Pose, t float64) Pose {
	return Pose{
		Position: lerpVec3(a.Position, b.Position, t),
		Rotation: lerpVec3(a.Rotation, b.Rotation, t),
	}
}
