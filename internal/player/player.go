// Package player defines the narrow media-player contract the note
// builder depends on, grounded on
// original_source/src/player/playeradapter.h's PlayerAdapter interface
// (tempScreenshot, tempAudioClip, getSubStart/getSubEnd/getPath).
//
// Only the subset consumed by media synthesis (screenshots, audio clips,
// current-file metadata) is modeled; playback control (seek, tracks,
// volume) belongs to the player-facing UI and is out of this core's scope.
package player

import "context"

// ScreenshotOptions bounds a captured still.
type ScreenshotOptions struct {
	MaxWidth  int
	MaxHeight int
	KeepRatio bool
	Subtitled bool
}

// Adapter is implemented by a concrete media-player backend (mpv via IPC,
// in the original). All methods must be safe to call concurrently.
type Adapter interface {
	// Screenshot captures a still of the current frame, encoded at the
	// given options, to bytes. When Subtitled is true the on-screen
	// subtitle is burned into the image.
	Screenshot(ctx context.Context, opts ScreenshotOptions) ([]byte, error)

	// AudioClip extracts [startTime, endTime] of the currently playing
	// media's audio track, optionally loudness-normalized to lufs.
	AudioClip(ctx context.Context, startTime, endTime float64, normalize bool, lufs float64) ([]byte, error)

	// CurrentMediaPath returns the path of the file currently loaded.
	CurrentMediaPath() string
}
