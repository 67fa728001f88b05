package audio

// cyclesPerFrameSequencerStep is how many T-cycles separate frame sequencer
// ticks: 4194304 Hz / 512 Hz = 8192.
const cyclesPerFrameSequencerStep = 8192

// waveRAMSize is the size of the wave pattern RAM in bytes (32 4-bit samples).
const waveRAMSize = 16

// dutyTable holds the four square-wave duty cycle patterns (12.5/25/50/75%),
// one bit per of the 8 steps.
var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0},
}

// noiseDivisor maps NR43's 3-bit divisor code to its T-cycle divisor.
var noiseDivisor = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// waveShift maps NR32's 2-bit output-level field to a right shift of the
// 4-bit wave sample (0 = mute).
var waveShift = [4]uint8{4, 0, 1, 2}

// registerOrMask holds the fixed bits that always read as 1, for the write-only
// or partially-implemented bits of each audio register.
var registerOrMask = map[uint16]uint8{
	0xFF10: 0b1000_0000, // NR10
	0xFF11: 0b0011_1111, // NR11
	0xFF12: 0b0000_0000, // NR12
	0xFF13: 0b1111_1111, // NR13 (write-only)
	0xFF14: 0b1011_1111, // NR14
	0xFF16: 0b0011_1111, // NR21
	0xFF17: 0b0000_0000, // NR22
	0xFF18: 0b1111_1111, // NR23 (write-only)
	0xFF19: 0b1011_1111, // NR24
	0xFF1A: 0b0111_1111, // NR30
	0xFF1B: 0b1111_1111, // NR31 (write-only)
	0xFF1C: 0b1001_1111, // NR32
	0xFF1D: 0b1111_1111, // NR33 (write-only)
	0xFF1E: 0b1011_1111, // NR34
	0xFF20: 0b1111_1111, // NR41 (write-only)
	0xFF21: 0b0000_0000, // NR42
	0xFF22: 0b0000_0000, // NR43
	0xFF23: 0b1011_1111, // NR44
	0xFF24: 0b0000_0000, // NR50
	0xFF25: 0b0000_0000, // NR51
	0xFF26: 0b0111_0000, // NR52
}
