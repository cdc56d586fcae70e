package vitrine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active glide tweens for camera yaw, pitch, and
// distance.
type glideAnim struct {
	tweenYaw  *gween.Tween
	tweenPit  *gween.Tween
	tweenDist *gween.Tween
	done      [3]bool
}

// Camera orbits a target point and projects scene points onto a screen
// plane with a perspective divide. The camera always looks at Target
// with no roll; its position is derived from Yaw, Pitch, and Distance.
type Camera struct {
	// Target is the world-space point the camera orbits and looks at.
	Target Vec3
	// Yaw is the horizontal orbit angle in radians.
	Yaw float64
	// Pitch is the vertical orbit angle in radians, clamped to avoid the
	// poles.
	Pitch float64
	// Distance is the orbit radius in scene units.
	Distance float64
	// FOV is the vertical field of view in radians.
	FOV float64
	// Width and Height are the projection viewport in pixels.
	Width, Height int

	glide *glideAnim
}

const (
	defaultFOV      = math.Pi / 4
	defaultDistance = 3000
	maxPitch        = math.Pi/2 - 0.01
	minDistance     = 50
)

// NewCamera creates a camera orbiting the origin at the default distance
// for the given viewport.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Distance: defaultDistance,
		FOV:      defaultFOV,
		Width:    width,
		Height:   height,
	}
}

// Position returns the camera's world-space position derived from the
// orbit parameters.
func (c *Camera) Position() Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	return c.Target.Add(Vec3{
		X: c.Distance * cp * sy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * cy,
	})
}

// OrbitBy rotates the camera around the target by the given yaw and
// pitch deltas, clamping pitch short of the poles.
func (c *Camera) OrbitBy(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-maxPitch, math.Min(c.Pitch+dPitch, maxPitch))
}

// DollyBy moves the camera toward (negative delta) or away from the
// target, never closer than minDistance.
func (c *Camera) DollyBy(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance+delta)
}

// GlideTo animates yaw, pitch, and distance to the given values over
// duration seconds. Call Update each frame to advance the glide; a new
// GlideTo replaces any glide in progress.
func (c *Camera) GlideTo(yaw, pitch, distance float64, duration float32, easeFn ease.TweenFunc) {
	c.glide = &glideAnim{
		tweenYaw:  gween.New(float32(c.Yaw), float32(yaw), duration, easeFn),
		tweenPit:  gween.New(float32(c.Pitch), float32(pitch), duration, easeFn),
		tweenDist: gween.New(float32(c.Distance), float32(distance), duration, easeFn),
	}
}

// Update advances an active glide by dt seconds.
func (c *Camera) Update(dt float32) {
	g := c.glide
	if g == nil {
		return
	}
	if !g.done[0] {
		val, done := g.tweenYaw.Update(dt)
		c.Yaw = float64(val)
		g.done[0] = done
	}
	if !g.done[1] {
		val, done := g.tweenPit.Update(dt)
		c.Pitch = float64(val)
		g.done[1] = done
	}
	if !g.done[2] {
		val, done := g.tweenDist.Update(dt)
		c.Distance = float64(val)
		g.done[2] = done
	}
	if g.done[0] && g.done[1] && g.done[2] {
		c.glide = nil
	}
}

// Gliding reports whether a GlideTo animation is in progress.
func (c *Camera) Gliding() bool {
	return c.glide != nil
}

// Project maps a world-space point to screen coordinates. depth is the
// distance along the view axis, used for painter's-algorithm sorting. ok
// is false for points at or behind the camera plane, whose screen
// coordinates are meaningless.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	pos := c.Position()

	// Orthonormal camera basis: zAxis points from target to camera, the
	// view direction is -zAxis.
	zAxis := normalize(pos.Sub(c.Target))
	xAxis := normalize(Vec3{Y: 1}.Cross(zAxis))
	if length(xAxis) < 1e-12 {
		// Looking straight along Y; pick an arbitrary horizontal basis.
		xAxis = Vec3{X: 1}
	}
	yAxis := zAxis.Cross(xAxis)

	d := p.Sub(pos)
	cx := d.Dot(xAxis)
	cy := d.Dot(yAxis)
	cz := d.Dot(zAxis)

	depth = -cz
	if depth <= 1e-6 {
		return 0, 0, depth, false
	}

	focal := float64(c.Height) / 2 / math.Tan(c.FOV/2)
	sx = float64(c.Width)/2 + cx*focal/depth
	sy = float64(c.Height)/2 - cy*focal/depth
	return sx, sy, depth, true
}
