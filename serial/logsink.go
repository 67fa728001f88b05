// Package serial implements the boundary stub for the DMG's serial link
// cable (SB/SC registers). A serial peer is a non-goal; this sink completes
// any requested transfer instantly, returning 0xFF (no link partner) and
// raising the Serial interrupt, matching real hardware's behavior when
// nothing is connected to the link port.
package serial

import "github.com/hollowpixel/dmgcore/addr"

// LogSink is a no-peer serial port stub.
type LogSink struct {
	sb uint8
	sc uint8

	onComplete func()
}

// NewLogSink returns a stub serial port that calls onComplete whenever a
// transfer finishes (used to raise the Serial interrupt).
func NewLogSink(onComplete func()) *LogSink {
	return &LogSink{onComplete: onComplete}
}

func (s *LogSink) Read(address uint16) uint8 {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc | 0x7E
	default:
		return 0xFF
	}
}

func (s *LogSink) Write(address uint16, value uint8) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		if value&0x80 != 0 {
			// No peer connected: the transfer "completes" immediately with
			// 0xFF shifted in, and SC's start bit clears.
			s.sb = 0xFF
			s.sc &^= 0x80
			if s.onComplete != nil {
				s.onComplete()
			}
		}
	}
}
