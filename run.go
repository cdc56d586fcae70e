package vitrine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the Run window.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens an Ebitengine window and drives the scene until the window
// closes: every frame it processes input (keys 1-4 select layouts, left
// drag orbits the camera, the wheel dollies), advances the camera and
// scene, and blits the software renderer's frame to the screen. The
// renderer's output size must match the window size.
func Run(scene *Scene, cam *Camera, renderer *ImageRenderer, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 1024
	}
	if cfg.Height == 0 {
		cfg.Height = 768
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&game{
		scene:    scene,
		cam:      cam,
		renderer: renderer,
		width:    cfg.Width,
		height:   cfg.Height,
	})
}

// game adapts the scene to ebiten.Game.
type game struct {
	scene    *Scene
	cam      *Camera
	renderer *ImageRenderer
	width    int
	height   int

	dragging       bool
	lastMX, lastMY int
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	g.handleInput()
	g.cam.Update(dt)
	g.scene.Tick(g.scene.Clock().Now())
	return nil
}

func (g *game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.selectLayout(LayoutTable)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.selectLayout(LayoutSphere)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.selectLayout(LayoutHelix)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.selectLayout(LayoutGrid)
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.DollyBy(-wheelY * 120)
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && g.dragging {
		g.cam.OrbitBy(
			float64(g.lastMX-mx)*0.005,
			float64(my-g.lastMY)*0.005,
		)
	}
	g.dragging = pressed
	g.lastMX, g.lastMY = mx, my
}

func (g *game) selectLayout(kind Kind) {
	// A not-ready scene just ignores selection; nothing useful to do
	// with the error inside the frame loop.
	_ = g.scene.Select(kind)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.cam)
	if rgba, ok := g.renderer.Image().(*image.RGBA); ok {
		screen.WritePixels(rgba.Pix)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
