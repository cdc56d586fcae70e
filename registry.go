package vitrine

import "fmt"

// tile pairs one record slot with its live pose and render handle. Tiles
// are index-aligned with the records they were populated from; slot i of
// every layout set always maps to tile i.
type tile struct {
	record Record
	pose   Pose
	handle Handle
}

// Registry holds the ordered, mutable tile collection for one scene.
// Poses are written by the transition engine during an animation and
// otherwise keep their last interpolated value.
type Registry struct {
	tiles []tile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Populate replaces all tiles with one per record, creating a render
// handle for each through the renderer. Existing tiles are destroyed
// first. A nil record slice is ErrInvalidInput; an empty one is a valid
// empty scene.
func (r *Registry) Populate(records []Record, renderer Renderer) error {
	if records == nil {
		return fmt.Errorf("populate registry: nil records: %w", ErrInvalidInput)
	}
	r.Clear(renderer)

	r.tiles = make([]tile, len(records))
	for i, rec := range records {
		r.tiles[i] = tile{
			record: rec,
			handle: renderer.CreateHandle(rec),
		}
	}
	return nil
}

// Clear destroys every tile's render handle and empties the registry.
func (r *Registry) Clear(renderer Renderer) {
	for _, t := range r.tiles {
		renderer.DestroyHandle(t.handle)
	}
	r.tiles = nil
}

// Len returns the tile count.
func (r *Registry) Len() int {
	return len(r.tiles)
}

// Record returns the record at slot i.
func (r *Registry) Record(i int) Record {
	return r.tiles[i].record
}

// Handle returns the render handle at slot i.
func (r *Registry) Handle(i int) Handle {
	return r.tiles[i].handle
}

// Pose returns the current pose at slot i.
func (r *Registry) Pose(i int) Pose {
	return r.tiles[i].pose
}

// SetPose overwrites the pose at slot i. Called by the transition engine
// while an animation runs; nothing else mutates poses.
func (r *Registry) SetPose(i int, p Pose) {
	r.tiles[i].pose = p
}

// Poses returns a snapshot copy of every tile's current pose, in slot
// order. Mutating the returned slice does not affect the registry.
func (r *Registry) Poses() []Pose {
	poses := make([]Pose, len(r.tiles))
	for i, t := range r.tiles {
		poses[i] = t.pose
	}
	return poses
}
