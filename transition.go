package vitrine

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Transition is one in-flight animation run moving every tile from the
// pose it had when the run started toward a target layout, over a shared
// duration with a shared easing curve. At most one Transition is active
// per scene; starting a new one supersedes the old one entirely, and the
// superseded run leaves no residual scheduled work.
type Transition struct {
	target    []Pose
	start     []Pose
	startedAt time.Time
	duration  time.Duration
	easing    ease.TweenFunc
}

// newTransition captures reg's live poses — mid-animation interpolated
// values included — as the start poses for a run toward target. Capturing
// happens synchronously here, which is what makes rapid back-to-back
// transition starts safe: each run begins from whatever the tiles
// actually look like at call time, not from the previous run's target.
func newTransition(reg *Registry, target []Pose, startedAt time.Time, duration time.Duration) (*Transition, error) {
	if len(target) != reg.Len() {
		return nil, fmt.Errorf("transition: %d target poses for %d tiles: %w",
			len(target), reg.Len(), ErrLayoutMismatch)
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	return &Transition{
		target:    target,
		start:     reg.Poses(),
		startedAt: startedAt,
		duration:  duration,
		easing:    ease.InOutExpo,
	}, nil
}

// advance writes every tile's pose for the given sampled time and
// reports whether the run has completed. All tiles interpolate from the
// same time value, so they stay mutually synchronized. When progress
// reaches 1 the target poses are copied verbatim — the final state is
// exactly the target layout, with no eased floating-point residue.
func (tr *Transition) advance(reg *Registry, now time.Time) (done bool) {
	elapsed := now.Sub(tr.startedAt)
	if elapsed >= tr.duration {
		for i, p := range tr.target {
			reg.SetPose(i, p)
		}
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	eased := float64(tr.easing(
		float32(elapsed.Seconds()), 0, 1, float32(tr.duration.Seconds()),
	))
	for i := range tr.target {
		reg.SetPose(i, lerpPose(tr.start[i], tr.target[i], eased))
	}
	return false
}
