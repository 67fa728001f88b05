package memory

import (
	"errors"
	"fmt"
)

// header offsets within the ROM, per the DMG cartridge header layout.
const (
	titleAddress         = 0x134
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149

	minCartridgeSize = 0x4000 * 2 // two 16KiB banks, the smallest legal ROM
)

// ErrCartridgeFileTooShort is returned when the ROM image is smaller than two banks.
var ErrCartridgeFileTooShort = errors.New("memory: cartridge file too short")

// ErrUnsupportedCartridge is returned when the cartridge type byte names a
// mapper other than ROM-only (0x00) or MBC1 (0x01).
var ErrUnsupportedCartridge = errors.New("memory: unsupported cartridge type")

// Cartridge owns the immutable ROM image plus the MBC1 banking/external-RAM state.
type Cartridge struct {
	rom     []byte
	cartType uint8
	romSize uint8
	ramSize uint8

	mbc *MBC1
}

// LoadCartridge parses a ROM image and builds its mapper. Only cartridge type
// 0x00 (ROM only) and 0x01 (MBC1, no RAM/battery) are accepted.
func LoadCartridge(data []byte) (*Cartridge, error) {
	if len(data) < minCartridgeSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrCartridgeFileTooShort, len(data), minCartridgeSize)
	}

	cartType := data[cartridgeTypeAddress]
	if cartType != 0x00 && cartType != 0x01 {
		return nil, fmt.Errorf("%w: type 0x%02X", ErrUnsupportedCartridge, cartType)
	}

	c := &Cartridge{
		rom:      data,
		cartType: cartType,
		romSize:  data[romSizeAddress],
		ramSize:  data[ramSizeAddress],
	}
	c.mbc = newMBC1(c.rom)

	return c, nil
}

// Title returns the cleaned-up ASCII game title from the header.
func (c *Cartridge) Title() string {
	end := titleAddress + 16
	if end > len(c.rom) {
		end = len(c.rom)
	}
	raw := c.rom[titleAddress:end]

	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == 0 {
			break
		}
		if b >= 0x20 && b < 0x7F {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return "(untitled)"
	}
	return string(out)
}

// Read routes a cartridge-window access (ROM or external RAM) to the mapper.
func (c *Cartridge) Read(address uint16) uint8 {
	return c.mbc.Read(address)
}

// Write routes a cartridge-window access to the mapper's control registers or
// external RAM.
func (c *Cartridge) Write(address uint16, value uint8) {
	c.mbc.Write(address, value)
}
