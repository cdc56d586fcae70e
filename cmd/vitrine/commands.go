package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vitrine"
)

// renderFlags are shared by the render and sequence commands.
type renderFlags struct {
	recordsPath string
	url         string
	token       string
	configPath  string
	width       int
	height      int
	yaw         float64
	pitch       float64
	distance    float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.recordsPath, "records", "", "path to a JSON records file")
	cmd.Flags().StringVar(&f.url, "url", "", "URL of a JSON records endpoint")
	cmd.Flags().StringVar(&f.token, "token", "", "bearer token for --url")
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a TOML layout config")
	cmd.Flags().IntVar(&f.width, "width", 1280, "output width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 800, "output height in pixels")
	cmd.Flags().Float64Var(&f.yaw, "yaw", 0.5, "camera yaw in radians")
	cmd.Flags().Float64Var(&f.pitch, "pitch", 0.2, "camera pitch in radians")
	cmd.Flags().Float64Var(&f.distance, "distance", 3200, "camera distance in scene units")
}

// source builds the record source from the flags; --records wins over
// --url.
func (f *renderFlags) source() (vitrine.Source, error) {
	switch {
	case f.recordsPath != "":
		return &vitrine.FileSource{Path: f.recordsPath}, nil
	case f.url != "":
		return &vitrine.HTTPSource{URL: f.url, Token: f.token}, nil
	default:
		return nil, fmt.Errorf("either --records or --url is required")
	}
}

func (f *renderFlags) config() (vitrine.Config, error) {
	if f.configPath == "" {
		return vitrine.DefaultConfig(), nil
	}
	return vitrine.LoadConfig(f.configPath)
}

// setup fetches records and builds a settled scene plus its renderer and
// camera, driven by the given simulated clock.
func (f *renderFlags) setup(ctx context.Context, clock *simClock) (*vitrine.Scene, *vitrine.ImageRenderer, *vitrine.Camera, error) {
	logger := loggerFromContext(ctx)

	src, err := f.source()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := f.config()
	if err != nil {
		return nil, nil, nil, err
	}

	records, err := src.Fetch(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("records loaded", "count", len(records))

	renderer := vitrine.NewImageRenderer(f.width, f.height)
	scene := vitrine.NewScene(renderer,
		vitrine.WithConfig(cfg),
		vitrine.WithClock(clock),
		vitrine.WithLogger(logger),
	)
	if err := scene.Initialize(records); err != nil {
		return nil, nil, nil, err
	}

	cam := vitrine.NewCamera(f.width, f.height)
	cam.Yaw = f.yaw
	cam.Pitch = f.pitch
	cam.Distance = f.distance
	return scene, renderer, cam, nil
}

// settle advances the clock past the scene's transition duration and
// ticks once so the tiles rest exactly on their targets.
func settle(scene *vitrine.Scene, clock *simClock, d time.Duration) {
	clock.step(d + time.Millisecond)
	scene.Tick(clock.Now())
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	var layoutName string
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a PNG snapshot of one layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := vitrine.ParseKind(layoutName)
			if err != nil {
				return err
			}

			clock := &simClock{t: time.Unix(0, 0)}
			scene, renderer, cam, err := flags.setup(cmd.Context(), clock)
			if err != nil {
				return err
			}

			d := scene.Config().Duration()
			settle(scene, clock, d) // settle the initial table arrangement
			if err := scene.Select(kind); err != nil {
				return err
			}
			settle(scene, clock, d)

			renderer.Draw(cam)
			if err := renderer.WritePNG(out); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("snapshot written", "layout", kind, "path", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&layoutName, "layout", "table", "layout to render: table, sphere, helix, grid")
	cmd.Flags().StringVarP(&out, "out", "o", "vitrine.png", "output PNG path")
	return cmd
}

func newSequenceCmd() *cobra.Command {
	var flags renderFlags
	var fromName, toName string
	var frames int
	var outDir string

	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Render a transition between two layouts as PNG frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := vitrine.ParseKind(fromName)
			if err != nil {
				return err
			}
			to, err := vitrine.ParseKind(toName)
			if err != nil {
				return err
			}
			if frames < 2 {
				return fmt.Errorf("--frames must be at least 2: %w", vitrine.ErrInvalidInput)
			}

			clock := &simClock{t: time.Unix(0, 0)}
			scene, renderer, cam, err := flags.setup(cmd.Context(), clock)
			if err != nil {
				return err
			}

			d := scene.Config().Duration()
			settle(scene, clock, d)
			if err := scene.Select(from); err != nil {
				return err
			}
			settle(scene, clock, d)

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			if err := scene.Select(to); err != nil {
				return err
			}

			step := d / time.Duration(frames-1)
			var elapsed time.Duration
			for i := 0; i < frames; i++ {
				switch {
				case i == frames-1:
					// Land exactly on the duration so the final frame shows
					// the settled target layout.
					clock.step(d - elapsed)
				case i > 0:
					clock.step(step)
					elapsed += step
				}
				scene.Tick(clock.Now())
				renderer.Draw(cam)

				path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", i))
				if err := renderer.WritePNG(path); err != nil {
					return err
				}
			}
			loggerFromContext(cmd.Context()).Info("sequence written",
				"from", from, "to", to, "frames", frames, "dir", outDir)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&fromName, "from", "table", "starting layout")
	cmd.Flags().StringVar(&toName, "to", "sphere", "target layout")
	cmd.Flags().IntVar(&frames, "frames", 12, "number of frames to emit")
	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	return cmd
}
