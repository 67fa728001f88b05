package memory

import "github.com/hollowpixel/dmgcore/bit"

// Button identifies one of the eight DMG joypad buttons.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// Joypad tracks the live button/d-pad state (active-low, as on hardware) and
// renders it through the P1 register's selection bits.
type Joypad struct {
	buttons uint8 // A,B,Select,Start in bits 0-3, active-low
	dpad    uint8 // Right,Left,Up,Down in bits 0-3, active-low
	select_ uint8 // raw bits 4-5 of P1, as last written
}

// NewJoypad returns a joypad with no buttons pressed.
func NewJoypad() *Joypad {
	return &Joypad{buttons: 0x0F, dpad: 0x0F}
}

// Press marks a button held down and reports whether this is a new
// high-to-low transition on the P1 input lines as currently selected (used
// to raise the joypad interrupt); a press in an unselected group reports none.
func (j *Joypad) Press(b Button) (transitioned bool) {
	before := j.Read() & 0x0F
	switch buttonGroup(b) {
	case groupDpad:
		j.dpad = bit.Reset(buttonBit(b), j.dpad)
	case groupButtons:
		j.buttons = bit.Reset(buttonBit(b), j.buttons)
	}
	return before != j.Read()&0x0F
}

// Release marks a button as no longer held.
func (j *Joypad) Release(b Button) {
	switch buttonGroup(b) {
	case groupDpad:
		j.dpad = bit.Set(buttonBit(b), j.dpad)
	case groupButtons:
		j.buttons = bit.Set(buttonBit(b), j.buttons)
	}
}

type buttonGroupID int

const (
	groupDpad buttonGroupID = iota
	groupButtons
)

func buttonGroup(b Button) buttonGroupID {
	if b <= ButtonDown {
		return groupDpad
	}
	return groupButtons
}

func buttonBit(b Button) uint8 {
	switch b {
	case ButtonRight, ButtonA:
		return 0
	case ButtonLeft, ButtonB:
		return 1
	case ButtonUp, ButtonSelect:
		return 2
	case ButtonDown, ButtonStart:
		return 3
	}
	return 0
}

func (j *Joypad) register(b Button) uint8 {
	if buttonGroup(b) == groupDpad {
		return j.dpad
	}
	return j.buttons
}

// WriteSelect stores the selection bits (P1 bits 4-5) written by the CPU.
func (j *Joypad) WriteSelect(value uint8) {
	j.select_ = value & 0x30
}

// Read renders the current P1 value: bits 6-7 always read 1, bits 4-5 are the
// selection as last written, and bits 0-3 expose the selected button group
// (active-low), ANDed together when both groups are selected.
func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.select_

	selectButtons := !bit.IsSet(5, j.select_)
	selectDpad := !bit.IsSet(4, j.select_)

	switch {
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	case selectButtons:
		result |= j.buttons & 0x0F
	case selectDpad:
		result |= j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	return result
}
