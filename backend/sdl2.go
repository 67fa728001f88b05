//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hollowpixel/dmgcore/memory"
	"github.com/hollowpixel/dmgcore/video"
)

const pixelScale = 4

var sdlKeyMapping = map[sdl.Keycode]memory.Button{
	sdl.K_UP:     memory.ButtonUp,
	sdl.K_DOWN:   memory.ButtonDown,
	sdl.K_LEFT:   memory.ButtonLeft,
	sdl.K_RIGHT:  memory.ButtonRight,
	sdl.K_z:      memory.ButtonA,
	sdl.K_x:      memory.ButtonB,
	sdl.K_RETURN: memory.ButtonStart,
	sdl.K_SPACE:  memory.ButtonSelect,
}

// SDL2Backend presents frames through an SDL2 window, requiring the SDL2
// development libraries (build with -tags sdl2).
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// NewSDL2Backend returns an uninitialized SDL2 backend.
func NewSDL2Backend() *SDL2Backend { return &SDL2Backend{} }

func (s *SDL2Backend) Init(config Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl2 init: %w", err)
	}

	title := config.Title
	if title == "" {
		title = "dmgcore"
	}
	scale := config.Scale
	if scale <= 0 {
		scale = pixelScale
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.Width*scale), int32(video.Height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl2 create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 create texture: %w", err)
	}
	s.texture = texture
	s.pixels = make([]byte, video.Width*video.Height*4)

	slog.Info("sdl2 backend initialized")
	return nil
}

func (s *SDL2Backend) Update(frame *video.FrameBuffer) ([]ButtonEvent, error) {
	var events []ButtonEvent

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return events, errQuit
		case *sdl.KeyboardEvent:
			b, ok := sdlKeyMapping[e.Keysym.Sym]
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				events = append(events, ButtonEvent{Button: b, Type: Press})
			} else if e.Type == sdl.KEYUP {
				events = append(events, ButtonEvent{Button: b, Type: Release})
			}
		}
	}

	for i, argb := range frame.Pixels {
		off := i * 4
		s.pixels[off] = byte(argb >> 16)   // R
		s.pixels[off+1] = byte(argb >> 8)  // G
		s.pixels[off+2] = byte(argb)       // B
		s.pixels[off+3] = byte(argb >> 24) // A
	}
	s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.Width*4)

	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	return events, nil
}

func (s *SDL2Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

var errQuit = fmt.Errorf("quit requested")
