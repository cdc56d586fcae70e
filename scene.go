package vitrine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Scene is the explicit context object owning one visualization: the
// tile registry, the precomputed layout sets, the active transition, and
// the external collaborators. Everything the engine mutates hangs off a
// Scene; there is no package-level state.
type Scene struct {
	renderer Renderer
	clock    Clock
	cfg      Config
	logger   *log.Logger
	duration time.Duration

	registry   *Registry
	layouts    map[Kind][]Pose
	transition *Transition
	ready      bool
}

// Option configures a Scene at construction.
type Option func(*Scene)

// WithClock injects the time source. Tests use a simulated clock to step
// transitions deterministically.
func WithClock(c Clock) Option {
	return func(s *Scene) { s.clock = c }
}

// WithConfig replaces the layout geometry configuration.
func WithConfig(cfg Config) Option {
	return func(s *Scene) {
		s.cfg = cfg
		s.duration = cfg.Duration()
	}
}

// WithDuration overrides the transition duration from the config.
func WithDuration(d time.Duration) Option {
	return func(s *Scene) { s.duration = d }
}

// WithLogger attaches a logger. The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) { s.logger = l }
}

// NewScene creates a scene bound to the given renderer. The scene is not
// ready until Initialize has run.
func NewScene(renderer Renderer, opts ...Option) *Scene {
	s := &Scene{
		renderer: renderer,
		clock:    SystemClock(),
		cfg:      DefaultConfig(),
		logger:   log.New(io.Discard),
		registry: NewRegistry(),
	}
	s.duration = s.cfg.Duration()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the scene's live tile registry.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Clock returns the scene's time source. Frame drivers must sample ticks
// from the same clock the scene timestamps transitions with.
func (s *Scene) Clock() Clock {
	return s.clock
}

// Ready reports whether Initialize has completed and layout selection is
// available.
func (s *Scene) Ready() bool {
	return s.ready
}

// Config returns the scene's layout configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Initialize builds the scene from records: any prior scene is torn down
// first, tiles and render handles are created, all four layout sets are
// computed for the record count, and the tiles immediately begin
// animating into the table arrangement.
func (s *Scene) Initialize(records []Record) error {
	s.Teardown()

	if err := s.registry.Populate(records, s.renderer); err != nil {
		return fmt.Errorf("initialize scene: %w", err)
	}

	s.layouts = make(map[Kind][]Pose, len(kindNames))
	for _, kind := range Kinds() {
		s.layouts[kind] = Generate(kind, s.registry.Len(), s.cfg)
	}
	s.ready = true

	s.logger.Debug("scene initialized", "tiles", s.registry.Len())
	return s.Select(LayoutTable)
}

// Teardown stops any running transition, destroys every tile's render
// handle, and clears the layouts. Safe to call before any Initialize and
// safe to call twice.
func (s *Scene) Teardown() {
	if s.transition != nil || s.registry.Len() > 0 {
		s.logger.Debug("scene torn down", "tiles", s.registry.Len())
	}
	s.transition = nil
	s.registry.Clear(s.renderer)
	s.layouts = nil
	s.ready = false
}

// Select begins an animated transition into the named precomputed layout
// over the scene's default duration. Selecting the layout the tiles are
// already in restarts the animation timer but ends in the same poses.
func (s *Scene) Select(kind Kind) error {
	if !s.ready {
		return fmt.Errorf("select %s: %w", kind, ErrNotReady)
	}
	return s.TransitionTo(s.layouts[kind], s.duration)
}

// SelectTable animates into the flat table arrangement.
func (s *Scene) SelectTable() error { return s.Select(LayoutTable) }

// SelectSphere animates into the spherical arrangement.
func (s *Scene) SelectSphere() error { return s.Select(LayoutSphere) }

// SelectHelix animates into the double-helix arrangement.
func (s *Scene) SelectHelix() error { return s.Select(LayoutHelix) }

// SelectGrid animates into the volumetric grid arrangement.
func (s *Scene) SelectGrid() error { return s.Select(LayoutGrid) }

// TransitionTo starts a synchronized animation of every tile from its
// current (possibly mid-animation) pose to target[i] over the given
// duration. Any transition already running is superseded atomically: the
// new run captures live poses before this call returns, so repeated
// rapid calls need no external coordination. The target length must
// equal the tile count.
func (s *Scene) TransitionTo(target []Pose, duration time.Duration) error {
	tr, err := newTransition(s.registry, target, s.clock.Now(), duration)
	if err != nil {
		return err
	}
	s.transition = tr
	s.logger.Debug("transition started", "tiles", s.registry.Len(), "duration", duration)
	return nil
}

// Transitioning reports whether an animation run is in progress.
func (s *Scene) Transitioning() bool {
	return s.transition != nil
}

// Tick advances the scene for one frame at the sampled time: the active
// transition (if any) writes every tile's pose, then the renderer is
// asked to apply each tile's current pose. Poses are re-applied even
// when no transition runs, so viewpoint changes between ticks still get
// drawn. Returns true while an animation is still running.
func (s *Scene) Tick(now time.Time) bool {
	if s.transition != nil {
		if s.transition.advance(s.registry, now) {
			s.transition = nil
			s.logger.Debug("transition complete")
		}
	}
	for i := 0; i < s.registry.Len(); i++ {
		s.renderer.ApplyPose(s.registry.Handle(i), s.registry.Pose(i))
	}
	return s.transition != nil
}
