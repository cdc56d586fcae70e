package vitrine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"

	"github.com/fogleman/gg"
)

// Tile card dimensions in scene units, shared by every layout's spacing
// defaults.
const (
	cardHalfW = 60
	cardHalfH = 80
)

// tileCard is the software renderer's element for one tile: the record's
// visual content plus the last applied pose.
type tileCard struct {
	rec  Record
	pose Pose
}

// ImageRenderer is a CPU rasterizer implementing Renderer. Tiles are
// drawn as flat cards oriented by their pose, projected through a
// Camera, depth-sorted far to near, and composited onto an offscreen
// context. It exists for headless snapshots (CLI, tests) and as the
// frame source for the interactive viewer.
type ImageRenderer struct {
	width, height int
	cards         map[Handle]*tileCard
	order         []Handle
	dc            *gg.Context
}

// NewImageRenderer creates a renderer with the given output size in
// pixels.
func NewImageRenderer(width, height int) *ImageRenderer {
	return &ImageRenderer{
		width:  width,
		height: height,
		cards:  make(map[Handle]*tileCard),
		dc:     gg.NewContext(width, height),
	}
}

// CreateHandle allocates a card for the record.
func (r *ImageRenderer) CreateHandle(rec Record) Handle {
	h := NewHandle()
	r.cards[h] = &tileCard{rec: rec}
	r.order = append(r.order, h)
	return h
}

// ApplyPose stores the tile's pose for the next Draw. Unknown handles
// are ignored.
func (r *ImageRenderer) ApplyPose(h Handle, pose Pose) {
	if card, ok := r.cards[h]; ok {
		card.pose = pose
	}
}

// DestroyHandle releases the card. Destroying an unknown handle is a
// no-op.
func (r *ImageRenderer) DestroyHandle(h Handle) {
	if _, ok := r.cards[h]; !ok {
		return
	}
	delete(r.cards, h)
	for i, o := range r.order {
		if o == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live cards.
func (r *ImageRenderer) Len() int {
	return len(r.cards)
}

// projected is one card ready for compositing.
type projected struct {
	xs, ys [4]float64
	depth  float64
	card   *tileCard
}

// Draw rasterizes every card from the camera's viewpoint. Cards with any
// corner at or behind the camera plane are skipped.
func (r *ImageRenderer) Draw(cam *Camera) {
	r.dc.SetRGB(0.04, 0.04, 0.08)
	r.dc.Clear()

	visible := make([]projected, 0, len(r.order))
	for _, h := range r.order {
		card := r.cards[h]
		p, ok := projectCard(cam, card)
		if ok {
			visible = append(visible, p)
		}
	}

	// Painter's algorithm: far cards first.
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for i := range visible {
		r.drawCard(&visible[i])
	}
}

// projectCard projects the four oriented corners of a card.
func projectCard(cam *Camera, card *tileCard) (projected, bool) {
	corners := [4]Vec3{
		{-cardHalfW, cardHalfH, 0},
		{cardHalfW, cardHalfH, 0},
		{cardHalfW, -cardHalfH, 0},
		{-cardHalfW, -cardHalfH, 0},
	}

	var p projected
	p.card = card
	for i, corner := range corners {
		world := rotateEuler(corner, card.pose.Rotation).Add(card.pose.Position)
		sx, sy, depth, ok := cam.Project(world)
		if !ok {
			return projected{}, false
		}
		p.xs[i] = sx
		p.ys[i] = sy
		p.depth += depth / 4
	}
	return p, true
}

// drawCard fills the card quad, outlines it, and stamps the name and
// country labels at the projected center.
func (r *ImageRenderer) drawCard(p *projected) {
	cr, cg, cb := netWorthColor(p.card.rec)

	r.dc.MoveTo(p.xs[0], p.ys[0])
	for i := 1; i < 4; i++ {
		r.dc.LineTo(p.xs[i], p.ys[i])
	}
	r.dc.ClosePath()
	r.dc.SetRGBA(cr, cg, cb, 0.85)
	r.dc.FillPreserve()
	r.dc.SetRGBA(1, 1, 1, 0.5)
	r.dc.SetLineWidth(1)
	r.dc.Stroke()

	cx := (p.xs[0] + p.xs[1] + p.xs[2] + p.xs[3]) / 4
	cy := (p.ys[0] + p.ys[1] + p.ys[2] + p.ys[3]) / 4
	r.dc.SetRGB(1, 1, 1)
	r.dc.DrawStringAnchored(p.card.rec.Name, cx, cy-6, 0.5, 0.5)
	r.dc.DrawStringAnchored(p.card.rec.Country, cx, cy+8, 0.5, 0.5)
}

// netWorthColor classifies a record's net worth into a card color.
// Unknown values get a neutral slate.
func netWorthColor(rec Record) (cr, cg, cb float64) {
	switch {
	case !rec.NetWorthKnown:
		return 0.35, 0.38, 0.45
	case rec.NetWorth >= 1e9:
		return 0.85, 0.68, 0.15
	case rec.NetWorth >= 1e6:
		return 0.18, 0.55, 0.34
	default:
		return 0.22, 0.35, 0.6
	}
}

// Image returns the last composited frame.
func (r *ImageRenderer) Image() image.Image {
	return r.dc.Image()
}

// WritePNG writes the last composited frame as a PNG file.
func (r *ImageRenderer) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, r.dc.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
