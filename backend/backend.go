// Package backend defines the presentation boundary: rendering a completed
// frame and collecting button events, with terminal, SDL2 and headless
// implementations behind one interface.
package backend

import (
	"github.com/hollowpixel/dmgcore/memory"
	"github.com/hollowpixel/dmgcore/video"
)

// ButtonEventType distinguishes a press from a release.
type ButtonEventType int

const (
	Press ButtonEventType = iota
	Release
)

// ButtonEvent is one joypad transition collected during a backend Update.
type ButtonEvent struct {
	Button memory.Button
	Type   ButtonEventType
}

// Config configures a backend at Init time.
type Config struct {
	Title string
	Scale int
}

// Backend is a complete presentation platform: it renders frames and
// reports the button events it collected while doing so.
type Backend interface {
	Init(config Config) error
	Update(frame *video.FrameBuffer) ([]ButtonEvent, error)
	Cleanup() error
}
