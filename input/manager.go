// Package input maps a backend's raw key events onto the DMG joypad,
// generalizing the reference core's action/event indirection down to the
// eight hardware buttons this emulator actually exposes.
package input

import (
	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/memory"
)

// Manager forwards button press/release events to the joypad and raises the
// Joypad interrupt on a press transition, matching hardware (P1 is wired to
// an edge-sensitive interrupt line).
type Manager struct {
	io     *memory.IO
	joypad *memory.Joypad
}

// NewManager returns a button manager wired to the given I/O dispatcher.
func NewManager(io *memory.IO) *Manager {
	return &Manager{io: io, joypad: io.Joypad()}
}

// Press marks a button held down, raising the Joypad interrupt on a
// high-to-low transition.
func (m *Manager) Press(b memory.Button) {
	if m.joypad.Press(b) {
		m.io.RequestInterrupt(addr.Joypad)
	}
}

// Release marks a button as no longer held.
func (m *Manager) Release(b memory.Button) {
	m.joypad.Release(b)
}
