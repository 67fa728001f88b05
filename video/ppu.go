package video

import (
	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/bit"
	"github.com/hollowpixel/dmgcore/memory"
)

// Mode identifies the PPU's current scanline stage; the values match STAT
// bits 1-0.
type Mode uint8

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeDraw   Mode = 3
)

// Fixed per-spec timings (a simplification of the variable 168-291 cycle
// mode-3 window): 80 + 200 + 176 = 456 cycles per line, 456*154 = 70224 per
// frame.
const (
	oamCycles   = 80
	drawCycles  = 200
	hblankCycles = 176
	lineCycles  = oamCycles + drawCycles + hblankCycles
	vblankLines = 10
)

type spriteEntry struct {
	x, y  int
	tile  uint8
	flags uint8
}

// PPU is the DMG Picture Processing Unit: the scanline mode state machine,
// background/window/object rendering, and the frame buffer it writes into.
type PPU struct {
	bus *memory.Bus

	mode        Mode
	line        int
	modeCycles  int
	sprites     []spriteEntry
	bgColorIdx  [Width]uint8
	windowLine  int

	frame      *FrameBuffer
	needRender bool
}

// NewPPU returns a PPU wired to the given bus, starting in mode 2 at LY=0.
func NewPPU(bus *memory.Bus) *PPU {
	p := &PPU{
		bus:     bus,
		mode:    ModeOAM,
		frame:   NewFrameBuffer(),
		sprites: make([]spriteEntry, 0, 10),
	}
	p.bus.IO.SetSTATMode(uint8(ModeOAM))
	return p
}

// FrameBuffer returns the PPU's frame buffer (stable pointer across ticks).
func (p *PPU) FrameBuffer() *FrameBuffer { return p.frame }

// RenderFlagAndReset returns true exactly once per completed frame.
func (p *PPU) RenderFlagAndReset() bool {
	flag := p.needRender
	p.needRender = false
	return flag
}

func (p *PPU) lcdEnabled() bool {
	return bit.IsSet(7, p.bus.Read(addr.LCDC))
}

// Tick advances the PPU by the given number of T-cycles, catching up
// through as many mode transitions as the cycle count demands.
func (p *PPU) Tick(cycles int) {
	if !p.lcdEnabled() {
		return
	}

	p.modeCycles += cycles

	for p.advanceOnce() {
	}
}

// advanceOnce performs at most one mode transition, reporting whether it did
// so (the caller loops this to drain however many cycles accumulated).
func (p *PPU) advanceOnce() bool {
	switch p.mode {
	case ModeOAM:
		if p.modeCycles < oamCycles {
			return false
		}
		p.modeCycles -= oamCycles
		p.scanOAM()
		p.setMode(ModeDraw)
	case ModeDraw:
		if p.modeCycles < drawCycles {
			return false
		}
		p.modeCycles -= drawCycles
		p.drawScanline()
		p.setMode(ModeHBlank)
	case ModeHBlank:
		if p.modeCycles < hblankCycles {
			return false
		}
		p.modeCycles -= hblankCycles
		p.advanceLine()
	case ModeVBlank:
		if p.modeCycles < lineCycles {
			return false
		}
		p.modeCycles -= lineCycles
		p.line++
		if p.line == 144+vblankLines {
			p.line = 0
			p.needRender = true
			p.setLY(0)
			p.setMode(ModeOAM)
		} else {
			p.setLY(p.line)
			p.checkLYC()
		}
	}
	return true
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.bus.IO.SetSTATMode(uint8(m))

	stat := p.bus.Read(addr.STAT)
	switch m {
	case ModeHBlank:
		if bit.IsSet(3, stat) {
			p.bus.IO.RequestInterrupt(addr.LCDStat)
		}
	case ModeOAM:
		if bit.IsSet(5, stat) {
			p.bus.IO.RequestInterrupt(addr.LCDStat)
		}
	case ModeVBlank:
		p.bus.IO.RequestInterrupt(addr.VBlank)
		if bit.IsSet(4, stat) {
			p.bus.IO.RequestInterrupt(addr.LCDStat)
		}
	}
}

func (p *PPU) advanceLine() {
	p.line++
	p.setLY(p.line)
	p.checkLYC()

	if p.line == 144 {
		p.windowLine = 0
		p.setMode(ModeVBlank)
		return
	}
	p.setMode(ModeOAM)
}

func (p *PPU) setLY(line int) {
	p.bus.Write(addr.LY, uint8(line))
}

func (p *PPU) checkLYC() {
	ly := p.bus.Read(addr.LY)
	lyc := p.bus.Read(addr.LYC)
	stat := p.bus.Read(addr.STAT)

	coincidence := ly == lyc
	stat = bit.SetTo(2, stat, coincidence)
	p.bus.Write(addr.STAT, stat)

	if coincidence && bit.IsSet(6, stat) {
		p.bus.IO.RequestInterrupt(addr.LCDStat)
	}
}

// scanOAM keeps up to 10 sprites overlapping the current scanline (8x8 mode
// only; 8x16 is a non-goal).
func (p *PPU) scanOAM() {
	p.sprites = p.sprites[:0]
	ly := p.line

	for i := 0; i < 40 && len(p.sprites) < 10; i++ {
		base := uint16(0xFE00 + i*4)
		spriteY := int(p.bus.Read(base)) - 16
		spriteX := int(p.bus.Read(base+1)) - 8
		tile := p.bus.Read(base + 2)
		flags := p.bus.Read(base + 3)

		if ly >= spriteY && ly < spriteY+8 {
			p.sprites = append(p.sprites, spriteEntry{x: spriteX, y: spriteY, tile: tile, flags: flags})
		}
	}
}

func (p *PPU) drawScanline() {
	p.renderBackground()
	p.renderWindow()
	p.renderSprites()
}

func (p *PPU) tileDataAddr(lcdc uint8, tileIndex uint8) uint16 {
	if bit.IsSet(4, lcdc) {
		return 0x8000 + uint16(tileIndex)*16
	}
	return uint16(0x9000 + int(int8(tileIndex))*16)
}

func (p *PPU) renderBackground() {
	lcdc := p.bus.Read(addr.LCDC)
	scy := p.bus.Read(addr.SCY)
	scx := p.bus.Read(addr.SCX)
	bgp := p.bus.Read(addr.BGP)

	mapBase := uint16(0x9800)
	if bit.IsSet(3, lcdc) {
		mapBase = 0x9C00
	}

	ly := uint8(p.line)
	bgY := scy + ly

	for x := 0; x < Width; x++ {
		bgX := scx + uint8(x)
		tileCol := uint16(bgX / 8)
		tileRow := uint16(bgY / 8)
		tileIndex := p.bus.Read(mapBase + tileRow*32 + tileCol)

		tileAddr := p.tileDataAddr(lcdc, tileIndex)
		row := bgY % 8
		b1 := p.bus.Read(tileAddr + uint16(row)*2)
		b2 := p.bus.Read(tileAddr + uint16(row)*2 + 1)

		col := bgX % 8
		colorIdx := ((b2>>(7-col))&1)<<1 | ((b1 >> (7 - col)) & 1)
		p.bgColorIdx[x] = colorIdx
		p.frame.set(x, p.line, applyPalette(bgp, colorIdx))
	}
}

func (p *PPU) renderWindow() {
	lcdc := p.bus.Read(addr.LCDC)
	if !bit.IsSet(5, lcdc) {
		return
	}

	wy := int(p.bus.Read(addr.WY))
	wx := int(p.bus.Read(addr.WX)) - 7
	if p.line < wy {
		return
	}

	bgp := p.bus.Read(addr.BGP)
	mapBase := uint16(0x9800)
	if bit.IsSet(6, lcdc) {
		mapBase = 0x9C00
	}

	drewAny := false
	for x := 0; x < Width; x++ {
		wxPixel := x - wx
		if wxPixel < 0 {
			continue
		}
		drewAny = true

		tileCol := uint16(wxPixel / 8)
		tileRow := uint16(p.windowLine / 8)
		tileIndex := p.bus.Read(mapBase + tileRow*32 + tileCol)

		tileAddr := p.tileDataAddr(lcdc, tileIndex)
		row := p.windowLine % 8
		b1 := p.bus.Read(tileAddr + uint16(row)*2)
		b2 := p.bus.Read(tileAddr + uint16(row)*2 + 1)

		col := wxPixel % 8
		colorIdx := ((b2>>(7-col))&1)<<1 | ((b1 >> (7 - col)) & 1)
		p.bgColorIdx[x] = colorIdx
		p.frame.set(x, p.line, applyPalette(bgp, colorIdx))
	}

	if drewAny {
		p.windowLine++
	}
}

func (p *PPU) renderSprites() {
	lcdc := p.bus.Read(addr.LCDC)
	if !bit.IsSet(1, lcdc) {
		return
	}

	obp0 := p.bus.Read(addr.OBP0)
	obp1 := p.bus.Read(addr.OBP1)

	for _, s := range p.sprites {
		row := p.line - s.y
		if bit.IsSet(6, s.flags) {
			row = 7 - row
		}
		tileAddr := uint16(0x8000) + uint16(s.tile)*16
		b1 := p.bus.Read(tileAddr + uint16(row)*2)
		b2 := p.bus.Read(tileAddr + uint16(row)*2 + 1)

		xFlip := bit.IsSet(5, s.flags)
		palette := obp0
		if bit.IsSet(4, s.flags) {
			palette = obp1
		}
		behindBG := bit.IsSet(7, s.flags)

		for col := 0; col < 8; col++ {
			px := s.x + col
			if px < 0 || px >= Width {
				continue
			}

			bitIndex := 7 - col
			if xFlip {
				bitIndex = col
			}
			colorIdx := ((b2>>bitIndex)&1)<<1 | ((b1 >> bitIndex) & 1)
			if colorIdx == 0 {
				continue
			}
			if behindBG && p.bgColorIdx[px] != 0 {
				continue
			}

			p.frame.set(px, p.line, applyPalette(palette, colorIdx))
		}
	}
}
