package vitrine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vec3 is a 3D vector in scene units. Used for positions, directions, and
// Euler rotation triples throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Pose is a position plus an orientation expressed as Euler angles in
// radians (X = pitch, Y = yaw, Z = roll). Pose is a value type; copying
// one never aliases another tile's state.
type Pose struct {
	Position Vec3
	Rotation Vec3
}

// Kind identifies one of the supported spatial arrangements.
type Kind uint8

const (
	LayoutTable  Kind = iota // flat 20×10 wall facing the camera
	LayoutSphere             // spherical Fibonacci shell, tiles facing outward
	LayoutHelix              // double helix, two interleaved strands
	LayoutGrid               // 5×4×10 volumetric lattice
)

// kindNames is indexed by Kind.
var kindNames = [...]string{"table", "sphere", "helix", "grid"}

// Kinds lists all layout kinds in selection order.
func Kinds() []Kind {
	return []Kind{LayoutTable, LayoutSphere, LayoutHelix, LayoutGrid}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind converts a layout name ("table", "sphere", "helix", "grid")
// to its Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("parse layout kind %q: %w", s, ErrInvalidInput)
}

// Error sentinels. Wrapped errors carry context; callers test with
// errors.Is.
var (
	// ErrInvalidInput reports malformed caller input such as a nil record
	// slice or a non-positive layout dimension.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLayoutMismatch reports a target layout whose length does not equal
	// the current tile count. This is a caller bug: layouts must always be
	// generated for the live count.
	ErrLayoutMismatch = errors.New("layout size mismatch")

	// ErrNotReady reports a layout selection before Initialize completed.
	ErrNotReady = errors.New("scene not ready")

	// Upstream data-source failures. The engine treats all three as "no
	// data" and never retries.
	ErrAuth    = errors.New("authorization failed")
	ErrNetwork = errors.New("network failure")
	ErrFormat  = errors.New("malformed data")
)

// Handle is an opaque reference to an externally rendered tile element.
// Handles are unique across scene rebuilds so a stale handle from a torn
// down scene can never alias a live tile.
type Handle uuid.UUID

// NewHandle returns a fresh, globally unique handle.
func NewHandle() Handle {
	return Handle(uuid.New())
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Renderer is the external drawing collaborator. The engine calls
// ApplyPose once per tile per tick; everything else about how a tile
// looks is the renderer's business.
type Renderer interface {
	// CreateHandle allocates a rendered element for the record and returns
	// its handle.
	CreateHandle(rec Record) Handle
	// ApplyPose moves the element identified by handle to the given pose.
	ApplyPose(h Handle, pose Pose)
	// DestroyHandle releases the element. Destroying an unknown handle is
	// a no-op.
	DestroyHandle(h Handle)
}

// Clock abstracts monotonic time so transitions can be driven by a
// simulated clock in tests. The engine only ever samples Now once per
// tick, so all tiles share a single time value.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock Clock used by default.
func SystemClock() Clock { return systemClock{} }
