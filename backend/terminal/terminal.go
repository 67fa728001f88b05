// Package terminal renders frames to the terminal using tcell, mapping
// keyboard events onto joypad button transitions.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hollowpixel/dmgcore/backend"
	"github.com/hollowpixel/dmgcore/memory"
	"github.com/hollowpixel/dmgcore/video"
)

const keyTimeout = 100 * time.Millisecond

var keyMapping = map[tcell.Key]memory.Button{
	tcell.KeyUp:    memory.ButtonUp,
	tcell.KeyDown:  memory.ButtonDown,
	tcell.KeyLeft:  memory.ButtonLeft,
	tcell.KeyRight: memory.ButtonRight,
}

var runeMapping = map[rune]memory.Button{
	'z': memory.ButtonA,
	'x': memory.ButtonB,
	'\r': memory.ButtonStart,
	' ': memory.ButtonSelect,
}

// Backend implements backend.Backend using a tcell terminal screen, drawing
// each frame as half-block characters (2 GB pixels per terminal cell).
type Backend struct {
	screen  tcell.Screen
	active  map[memory.Button]time.Time
	wasHeld map[memory.Button]bool
}

// New returns an uninitialized terminal backend.
func New() *Backend {
	return &Backend{
		active:  make(map[memory.Button]time.Time),
		wasHeld: make(map[memory.Button]bool),
	}
}

func (t *Backend) Init(config backend.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.screen = screen
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
	return nil
}

func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.ButtonEvent, error) {
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				return nil, errQuit
			}
			if b, ok := keyMapping[ev.Key()]; ok {
				t.active[b] = now
			} else if b, ok := runeMapping[ev.Rune()]; ok {
				t.active[b] = now
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	var events []backend.ButtonEvent
	held := make(map[memory.Button]bool, len(t.active))
	for b, last := range t.active {
		if now.Sub(last) < keyTimeout {
			held[b] = true
			if !t.wasHeld[b] {
				events = append(events, backend.ButtonEvent{Button: b, Type: backend.Press})
			}
		} else {
			delete(t.active, b)
		}
	}
	for b := range t.wasHeld {
		if !held[b] {
			events = append(events, backend.ButtonEvent{Button: b, Type: backend.Release})
		}
	}
	t.wasHeld = held

	t.render(frame)
	t.screen.Show()

	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

var errQuit = fmt.Errorf("quit requested")

func (t *Backend) render(frame *video.FrameBuffer) {
	t.screen.Clear()

	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			top := shadeOf(frame.Pixels[y*video.Width+x])
			bottom := top
			if y+1 < video.Height {
				bottom = shadeOf(frame.Pixels[(y+1)*video.Width+x])
			}
			ch, fg, bg := halfBlock(top, bottom)
			t.screen.SetContent(x, y/2, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// shadeOf maps an ARGB pixel to a 0 (lightest) - 3 (darkest) DMG shade index
// by its green channel, since the fixed palette ramp is monotonic in green.
func shadeOf(argb uint32) int {
	green := (argb >> 8) & 0xFF
	switch {
	case green >= 0xBC:
		return 0
	case green >= 0xAC:
		return 1
	case green >= 0x62:
		return 2
	default:
		return 3
	}
}

var shadeColors = [4]tcell.Color{tcell.ColorWhite, tcell.ColorSilver, tcell.ColorGray, tcell.ColorBlack}

func halfBlock(top, bottom int) (rune, tcell.Color, tcell.Color) {
	if top == bottom {
		return ' ', tcell.ColorDefault, shadeColors[top]
	}
	return '▀', shadeColors[top], shadeColors[bottom]
}
