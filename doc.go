// Package parallax renders looping, multi-layer parallax backgrounds for
// [Ebitengine].
//
// A [Scene] paints an ordered list of [Layer] values, back to front, from
// regions of one shared [Atlas] image. Each tick the [Camera] advances and
// every scrolling layer moves left by the camera speed times its speed
// ratio, wrapping by one frame width so two tiled copies always cover the
// frame. A layer may also carry an [Overlay]: a timed vertical animation
// that waits off-screen, slides in, dwells and slides out again, forever.
//
// # Quick start
//
//	scene, err := parallax.LoadScene(parallax.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer scene.Close()
//	if err := parallax.Run(scene, parallax.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// Scenes can also be described in YAML and read with [LoadConfig]:
//
//	title: Glacial Mountains
//	frame: {width: 768, height: 432}
//	atlas:
//	  image: glacial_mountains_textures.png
//	  regions:
//	    mountains: {x: 384, y: 0, w: 384, h: 216}
//	    credits:   {x: 384, y: 432, w: 384, h: 216}
//	camera: {scroll_speed: 4}
//	layers:
//	  - {region: mountains, scroll: {speed_ratio: 0.25}}
//	  - region: credits
//	    overlay: {vertical_speed: -2, enter_delay: 2s, dwell: 3s}
//
// For full control, drive [Scene.Update] and [Scene.Draw] from your own
// [ebiten.Game].
//
// [Ebitengine]: https://ebitengine.org
package parallax
