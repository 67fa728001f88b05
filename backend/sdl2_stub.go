//go:build !sdl2

package backend

import (
	"fmt"

	"github.com/hollowpixel/dmgcore/video"
)

// SDL2Backend stub for builds without the sdl2 tag (SDL2 development
// libraries not assumed to be installed).
type SDL2Backend struct{}

// NewSDL2Backend returns a stub backend that always fails to initialize.
func NewSDL2Backend() *SDL2Backend { return &SDL2Backend{} }

func (s *SDL2Backend) Init(config Config) error {
	return fmt.Errorf("sdl2 backend not available - rebuild with -tags sdl2")
}

func (s *SDL2Backend) Update(frame *video.FrameBuffer) ([]ButtonEvent, error) {
	return nil, fmt.Errorf("sdl2 backend not available")
}

func (s *SDL2Backend) Cleanup() error { return nil }
