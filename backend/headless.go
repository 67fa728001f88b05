package backend

import (
	"log/slog"

	"github.com/hollowpixel/dmgcore/video"
)

// HeadlessBackend discards frames, for batch/test runs with no display.
type HeadlessBackend struct {
	frameCount int
}

// NewHeadlessBackend returns a backend that presents nothing.
func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

func (h *HeadlessBackend) Init(config Config) error {
	slog.Info("headless backend initialized")
	return nil
}

func (h *HeadlessBackend) Update(frame *video.FrameBuffer) ([]ButtonEvent, error) {
	h.frameCount++
	return nil, nil
}

func (h *HeadlessBackend) Cleanup() error { return nil }

// FrameCount reports how many frames have been presented.
func (h *HeadlessBackend) FrameCount() int { return h.frameCount }
