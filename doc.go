// Package vitrine arranges data-record tiles in 3D space and animates
// them between layouts.
//
// Records (people with a name, photo, age, country, interest, and net
// worth) become tiles whose poses are computed by one of four layout
// generators: a flat table wall, a Fibonacci sphere, a double helix, and
// a volumetric grid. A [Scene] owns the tiles and drives eased,
// re-entrant transitions between layouts; a new selection can interrupt
// a transition in flight and the tiles continue smoothly from wherever
// they are.
//
// # Quick start
//
//	renderer := vitrine.NewImageRenderer(1024, 768)
//	scene := vitrine.NewScene(renderer)
//	if err := scene.Initialize(records); err != nil {
//		log.Fatal(err)
//	}
//
//	cam := vitrine.NewCamera(1024, 768)
//	if err := vitrine.Run(scene, cam, renderer, vitrine.RunConfig{
//		Title: "Vitrine", Width: 1024, Height: 768,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive the scene yourself: call [Scene.Tick] once per
// frame with a time sampled from the scene's clock, then draw through
// your own [Renderer]. The engine is a pure function of the sampled
// time, so a simulated clock steps it deterministically — this is how
// the tests run without a display.
//
// # Layouts
//
// [Generate] is pure and deterministic: the same kind, count, and
// [Config] always produce the same poses. Layout geometry is configured
// via [Config], loadable from TOML with [LoadConfig].
//
// # Transitions
//
// [Scene.TransitionTo] captures every tile's current pose synchronously
// and animates all tiles toward the target with a shared exponential
// ease-in-out curve. At completion the poses equal the target exactly.
// Starting a new transition is the only cancellation mechanism; the
// superseded run leaves nothing behind.
package vitrine
