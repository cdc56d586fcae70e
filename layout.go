package vitrine

import "math"

// Generate computes the ordered target poses for count tiles under the
// given arrangement. It is pure and deterministic: the same kind, count,
// and config always yield the same poses. Generate(kind, 0, cfg) returns
// an empty slice for every kind.
func Generate(kind Kind, count int, cfg Config) []Pose {
	if count <= 0 {
		return []Pose{}
	}
	switch kind {
	case LayoutSphere:
		return spherePoses(count, cfg.Sphere)
	case LayoutHelix:
		return helixPoses(count, cfg.Helix)
	case LayoutGrid:
		return gridPoses(count, cfg.Grid)
	default:
		return tablePoses(count, cfg.Table)
	}
}

// tablePoses fills a fixed wall of Columns×Rows slots left to right, top
// to bottom. The wall is centered at the origin regardless of how many
// slots are actually occupied; a partial data set fills only the first
// count slots.
func tablePoses(count int, cfg TableConfig) []Pose {
	offsetX := float64(cfg.Columns-1) * cfg.SpacingX / 2
	offsetY := float64(cfg.Rows-1) * cfg.SpacingY / 2

	poses := make([]Pose, count)
	for i := range poses {
		col := i % cfg.Columns
		row := i / cfg.Columns
		poses[i].Position = Vec3{
			X: float64(col)*cfg.SpacingX - offsetX,
			Y: -(float64(row)*cfg.SpacingY - offsetY),
		}
	}
	return poses
}

// spherePoses distributes tiles evenly over a sphere using the golden
// spiral mapping, each tile facing outward along its radius.
func spherePoses(count int, cfg SphereConfig) []Pose {
	n := float64(count)
	poses := make([]Pose, count)
	for i := range poses {
		phi := math.Acos(-1 + 2*float64(i)/n)
		theta := math.Sqrt(n*math.Pi) * phi

		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		pos := Vec3{
			X: cfg.Radius * cosTheta * sinPhi,
			Y: cfg.Radius * sinTheta * sinPhi,
			Z: cfg.Radius * cosPhi,
		}
		poses[i] = Pose{
			Position: pos,
			Rotation: lookAtRotation(pos, pos.Scale(2)),
		}
	}
	return poses
}

// helixPoses winds two interleaved strands, alternating tiles by index
// parity. The second strand is phase-shifted half a turn. Tiles face away
// from the helix axis.
func helixPoses(count int, cfg HelixConfig) []Pose {
	poses := make([]Pose, count)
	for i := range poses {
		angle := float64(i) * cfg.AngleStep
		if i%2 == 1 {
			angle += math.Pi
		}
		sin, cos := math.Sincos(angle)
		pos := Vec3{
			X: cfg.Radius * sin,
			Y: -float64(i)*cfg.Separation + float64(count)*cfg.Separation/2,
			Z: cfg.Radius * cos,
		}
		poses[i] = Pose{
			Position: pos,
			Rotation: lookAtRotation(pos, Vec3{2 * pos.X, pos.Y, 2 * pos.Z}),
		}
	}
	return poses
}

// gridPoses stacks tiles into an X×Y×Z lattice centered at the origin,
// filling X fastest, then Y, then Z.
func gridPoses(count int, cfg GridConfig) []Pose {
	cx := float64(cfg.X-1) / 2
	cy := float64(cfg.Y-1) / 2
	cz := float64(cfg.Z-1) / 2

	poses := make([]Pose, count)
	for i := range poses {
		gx := i % cfg.X
		gy := (i / cfg.X) % cfg.Y
		gz := (i / (cfg.X * cfg.Y)) % cfg.Z
		poses[i].Position = Vec3{
			X: (float64(gx) - cx) * cfg.Spacing,
			Y: -(float64(gy) - cy) * cfg.Spacing,
			Z: (float64(gz) - cz) * cfg.Spacing,
		}
	}
	return poses
}
