// Package watchface holds the shared primitives of the watch face engine:
// colors, geometry, affine matrices and the package-wide logger.
//
// # Overview
//
// The engine itself lives in package face. It keeps a small display state
// machine (active and ambient power modes), a registry of complication slots
// and a frame scheduler, and composes each frame as an ordered list of draw
// commands (package recording) that a backend rasterizes:
//
//	eng := face.New(
//	    face.WithPresenter(presenter),
//	    face.WithBattery(host.StaticBattery(80)),
//	)
//	go eng.Run(ctx)
//	_ = eng.Dispatch(ctx, face.Create{Width: 320, Height: 320})
//	_ = eng.Dispatch(ctx, face.VisibilityChanged{Visible: true})
//
// # Coordinate System
//
// Uses the usual display coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc and rotation angles in degrees, 0 is 3 o'clock, increasing clockwise
//
// # Packages
//
//   - face: engine, display state, scheduler, compositor
//   - complication: slot registry and default complication renderer
//   - recording: draw command recording and playback backends
//   - text: text measurement
//   - host: collaborator interfaces (preferences, battery, time zone)
package watchface

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"
)
