package vitrine

import (
	"math"
	"testing"
)

const geomEps = 1e-9

func vecNear(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

func TestLookAtRotationStraightAhead(t *testing.T) {
	rot := lookAtRotation(Vec3{}, Vec3{Z: 10})
	if !vecNear(rot, Vec3{}, geomEps) {
		t.Errorf("rotation = %v, want identity", rot)
	}
}

func TestLookAtRotationQuarterTurn(t *testing.T) {
	rot := lookAtRotation(Vec3{}, Vec3{X: 5})
	if math.Abs(rot.Y-math.Pi/2) > geomEps {
		t.Errorf("yaw = %f, want %f", rot.Y, math.Pi/2)
	}
	if rot.X != 0 || rot.Z != 0 {
		t.Errorf("pitch/roll = %f/%f, want 0/0", rot.X, rot.Z)
	}
}

func TestLookAtRotationDegenerate(t *testing.T) {
	rot := lookAtRotation(Vec3{X: 1, Y: 2, Z: 3}, Vec3{X: 1, Y: 2, Z: 3})
	if rot != (Vec3{}) {
		t.Errorf("rotation = %v, want identity for zero direction", rot)
	}
}

func TestLookAtRotationAimsForward(t *testing.T) {
	// Rotating the local +Z axis by the computed rotation must reproduce
	// the normalized direction, for a spread of targets.
	targets := []Vec3{
		{X: 3, Y: 1, Z: 2},
		{X: -4, Y: 2, Z: 1},
		{X: 0, Y: -3, Z: 5},
		{X: 1, Y: 0, Z: -1},
	}
	for _, target := range targets {
		rot := lookAtRotation(Vec3{}, target)
		facing := rotateEuler(Vec3{Z: 1}, rot)
		want := normalize(target)
		if !vecNear(facing, want, 1e-9) {
			t.Errorf("target %v: facing = %v, want %v", target, facing, want)
		}
	}
}

func TestRotateEulerIdentity(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := rotateEuler(v, Vec3{}); got != v {
		t.Errorf("rotateEuler identity = %v, want %v", got, v)
	}
}

func TestRotateEulerYawQuarter(t *testing.T) {
	got := rotateEuler(Vec3{Z: 1}, Vec3{Y: math.Pi / 2})
	if !vecNear(got, Vec3{X: 1}, geomEps) {
		t.Errorf("yaw quarter turn = %v, want (1,0,0)", got)
	}
}

func TestRotateEulerPreservesLength(t *testing.T) {
	v := Vec3{X: 2, Y: -3, Z: 5}
	got := rotateEuler(v, Vec3{X: 0.3, Y: -1.2, Z: 2.1})
	if math.Abs(length(got)-length(v)) > geomEps {
		t.Errorf("|rotated| = %f, want %f", length(got), length(v))
	}
}

func TestLerpPoseEndpoints(t *testing.T) {
	a := Pose{Position: Vec3{X: 1, Y: 2, Z: 3}, Rotation: Vec3{X: 0.1, Y: 0.2, Z: 0.3}}
	b := Pose{Position: Vec3{X: -4, Y: 0, Z: 9}, Rotation: Vec3{X: 1.1, Y: -0.2, Z: 0}}

	if got := lerpPose(a, b, 0); got != a {
		t.Errorf("lerp at 0 = %v, want %v", got, a)
	}
	if got := lerpPose(a, b, 1); got != b {
		t.Errorf("lerp at 1 = %v, want %v", got, b)
	}

	mid := lerpPose(a, b, 0.5)
	wantPos := Vec3{X: -1.5, Y: 1, Z: 6}
	if !vecNear(mid.Position, wantPos, geomEps) {
		t.Errorf("lerp at 0.5 position = %v, want %v", mid.Position, wantPos)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := normalize(Vec3{}); got != (Vec3{}) {
		t.Errorf("normalize zero = %v, want zero", got)
	}
}
