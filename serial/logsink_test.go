package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowpixel/dmgcore/addr"
)

func TestLogSinkSBRoundTrip(t *testing.T) {
	s := NewLogSink(func() {})
	s.Write(addr.SB, 0x42)
	assert.Equal(t, uint8(0x42), s.Read(addr.SB))
}

func TestLogSinkSCReadMasksUnusedBits(t *testing.T) {
	s := NewLogSink(func() {})
	s.Write(addr.SC, 0x01)
	assert.Equal(t, uint8(0x7F), s.Read(addr.SC)) // bits 6-1 always read 1
}

func TestLogSinkTransferCompletesInstantly(t *testing.T) {
	called := false
	s := NewLogSink(func() { called = true })

	s.Write(addr.SB, 0x00)
	s.Write(addr.SC, 0x81) // start bit + internal clock

	assert.Equal(t, uint8(0xFF), s.Read(addr.SB))  // no peer: 0xFF shifted in
	assert.Equal(t, uint8(0x7F), s.Read(addr.SC)) // start bit cleared, unused bits read 1
	assert.True(t, called)
}

func TestLogSinkNoTransferDoesNotCallback(t *testing.T) {
	called := false
	s := NewLogSink(func() { called = true })

	s.Write(addr.SC, 0x01) // no start bit
	assert.False(t, called)
}

func TestLogSinkUnmappedReadReturns0xFF(t *testing.T) {
	s := NewLogSink(func() {})
	assert.Equal(t, uint8(0xFF), s.Read(0x1234))
}
