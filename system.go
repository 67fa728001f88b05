// Package dmgcore wires the CPU, PPU, APU and memory bus into a runnable DMG
// system and drives them one frame at a time.
package dmgcore

import (
	"fmt"
	"log/slog"

	"github.com/hollowpixel/dmgcore/addr"
	"github.com/hollowpixel/dmgcore/cpu"
	"github.com/hollowpixel/dmgcore/input"
	"github.com/hollowpixel/dmgcore/memory"
	"github.com/hollowpixel/dmgcore/serial"
	"github.com/hollowpixel/dmgcore/timing"
	"github.com/hollowpixel/dmgcore/video"
)

// System is the root emulator: a cartridge-backed bus driving a CPU, PPU and
// APU in lockstep, one CPU instruction's worth of cycles at a time.
type System struct {
	Bus   *memory.Bus
	CPU   *cpu.CPU
	PPU   *video.PPU
	Input *input.Manager

	frameCycles int
}

// New builds a system around the given cartridge ROM image.
func New(romData []byte) (*System, error) {
	cart, err := memory.LoadCartridge(romData)
	if err != nil {
		return nil, fmt.Errorf("load cartridge: %w", err)
	}

	s := &System{}
	s.Bus = memory.NewBus(cart, serial.NewLogSink(func() {
		s.Bus.IO.RequestInterrupt(addr.Serial)
	}))
	s.CPU = cpu.New(s.Bus)
	s.PPU = video.NewPPU(s.Bus)
	s.Input = input.NewManager(s.Bus.IO)

	slog.Info("system initialized", "title", cart.Title())
	return s, nil
}

// RunFrame executes instructions until the PPU reports a completed frame,
// ticking the timer, PPU and APU after every instruction (the catch-up
// scheduler: nothing runs ahead of the CPU's own cycle count).
func (s *System) RunFrame() {
	for {
		cycles := s.CPU.Step()

		s.Bus.IO.Tick(cycles)
		s.PPU.Tick(cycles)
		s.Bus.APU().Tick(cycles)

		s.frameCycles += cycles
		if s.PPU.RenderFlagAndReset() {
			s.frameCycles -= timing.CyclesPerFrame
			return
		}
	}
}

// FrameBuffer returns the PPU's current frame buffer.
func (s *System) FrameBuffer() *video.FrameBuffer {
	return s.PPU.FrameBuffer()
}
