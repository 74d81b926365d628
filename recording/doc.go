// Package recording captures watch face frames as ordered canvas commands.
//
// The compositor never draws pixels directly. It records a frame with a
// Recorder, and the resulting immutable Recording is played back to a
// Backend: the raster backend (fogleman/gg), the e-paper panel backend, or
// a test double that inspects commands.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures canvas operations as typed commands
//   - Recording: stores commands and images for playback
//   - Backend: renders commands to a specific output
//
// Commands are typed structs rather than a binary format, so tests can
// assert on exactly what a frame draws:
//
//	for _, cmd := range rec.Commands() {
//	    if t, ok := cmd.(recording.DrawTextCommand); ok {
//	        fmt.Println(t.Text, t.Origin())
//	    }
//	}
//
// # Rotation
//
// Rotations are recorded as RotateCommand and accumulate until Restore, the
// way a canvas rotation does. Each RotateCommand also stores the resulting
// matrix, and each DrawTextCommand the transform in effect, so placement
// can be inspected without replaying.
//
// # Backend Registration
//
// Backends register by name in init():
//
//	import _ "github.com/gogpu/watchface/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
