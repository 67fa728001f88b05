package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/memory"
	"github.com/hollowpixel/dmgcore/serial"
)

func newTestPPU(t *testing.T) (*PPU, *memory.Bus) {
	t.Helper()
	rom := make([]byte, 0x8000)
	cart, err := memory.LoadCartridge(rom)
	require.NoError(t, err)

	bus := memory.NewBus(cart, serial.NewLogSink(func() {}))
	bus.Write(addr.LCDC, 0x80) // LCD on, nothing else enabled
	bus.Write(addr.IE, 0x1F)   // every interrupt source enabled
	ppu := NewPPU(bus)
	return ppu, bus
}

func TestPPUStartsInOAMMode(t *testing.T) {
	ppu, bus := newTestPPU(t)
	assert.Equal(t, ModeOAM, ppu.mode)
	assert.Equal(t, uint8(2), bus.Read(addr.STAT)&0x03)
}

func TestPPUModeProgression(t *testing.T) {
	ppu, _ := newTestPPU(t)

	ppu.Tick(oamCycles)
	assert.Equal(t, ModeDraw, ppu.mode)

	ppu.Tick(drawCycles)
	assert.Equal(t, ModeHBlank, ppu.mode)

	ppu.Tick(hblankCycles)
	assert.Equal(t, ModeOAM, ppu.mode)
	assert.Equal(t, 1, ppu.line)
}

func TestPPUEntersVBlankAfter144Lines(t *testing.T) {
	ppu, bus := newTestPPU(t)

	ppu.Tick(lineCycles * 144)

	assert.Equal(t, ModeVBlank, ppu.mode)
	assert.Equal(t, uint8(144), bus.Read(addr.LY))
}

func TestPPUCompletesFullFrame(t *testing.T) {
	ppu, _ := newTestPPU(t)

	ppu.Tick(lineCycles * 154)

	assert.True(t, ppu.RenderFlagAndReset())
	assert.False(t, ppu.RenderFlagAndReset()) // flag only fires once
	assert.Equal(t, ModeOAM, ppu.mode)
	assert.Equal(t, 0, ppu.line)
}

func TestPPUDisabledLCDDoesNotAdvance(t *testing.T) {
	ppu, bus := newTestPPU(t)
	bus.Write(addr.LCDC, 0x00) // LCD off

	ppu.Tick(lineCycles * 10)

	assert.Equal(t, ModeOAM, ppu.mode)
	assert.Equal(t, 0, ppu.line)
}

func TestPPULYCCoincidenceSetsSTATAndRequestsInterrupt(t *testing.T) {
	ppu, bus := newTestPPU(t)
	bus.Write(addr.LYC, 1)
	bus.Write(addr.STAT, 0x40) // enable LYC=LY interrupt source

	ppu.Tick(lineCycles) // advance to line 1

	assert.Equal(t, uint8(1), bus.Read(addr.LY))
	assert.True(t, bus.Read(addr.STAT)&0x04 != 0)

	n, pending := bus.IO.PendingInterrupt()
	assert.True(t, pending)
	assert.Equal(t, addr.LCDStat, n)
}

func TestPPUVBlankRequestsVBlankInterrupt(t *testing.T) {
	ppu, bus := newTestPPU(t)

	ppu.Tick(lineCycles * 144)

	n, pending := bus.IO.PendingInterrupt()
	assert.True(t, pending)
	assert.Equal(t, addr.VBlank, n)
}

func TestPPUBackgroundRenderUsesBGP(t *testing.T) {
	ppu, bus := newTestPPU(t)
	bus.Write(addr.LCDC, 0x90) // LCD on, BG tile data at 0x8000 (LCDC.4)
	// Write a tile (index 0 at 0x8000-0x800F): all bit0 set -> color index 1.
	for row := uint16(0); row < 8; row++ {
		bus.Write(0x8000+row*2, 0xFF)
		bus.Write(0x8000+row*2+1, 0x00)
	}
	bus.Write(addr.BGP, 0xE4) // identity palette: 11 10 01 00

	ppu.Tick(oamCycles+drawCycles)

	expected := applyPalette(0xE4, 1)
	assert.Equal(t, expected, ppu.frame.Pixels[0])
}

func TestPPUOAMScanLimitsToTenSprites(t *testing.T) {
	ppu, bus := newTestPPU(t)
	for i := 0; i < 40; i++ {
		base := uint16(0xFE00 + i*4)
		bus.Write(base, 16)  // y=0 on-screen
		bus.Write(base+1, 8) // x=0 on-screen
		bus.Write(base+2, 0)
		bus.Write(base+3, 0)
	}

	ppu.Tick(oamCycles)

	assert.Len(t, ppu.sprites, 10)
}

func TestApplyPaletteMapsShades(t *testing.T) {
	assert.Equal(t, dmgPalette[0], applyPalette(0xE4, 0))
	assert.Equal(t, dmgPalette[1], applyPalette(0xE4, 1))
	assert.Equal(t, dmgPalette[2], applyPalette(0xE4, 2))
	assert.Equal(t, dmgPalette[3], applyPalette(0xE4, 3))
}
