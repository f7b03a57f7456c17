package irprotocol

// YX1FF air conditioner remote protocol.
// Codes are 32-bit words sent with NEC pulse timing. Bit 31 is the MSB.
//
//	 31 30 29  28  27 26  25  24  23 .. 20  19 .. 5   4   3 .. 0
//	+--------+----+------+---+---+--------+--------+----+-------+
//	|  Mode  | ON | Fan  | 0 | S |  Temp  | const  | CF | const |
//	+--------+----+------+---+---+--------+--------+----+-------+
//
// Temp is the Celsius offset from 16 with its bit order reversed.
// The timer and Fahrenheit temperature fields are not supported.

const (
	YX1FF_base = 0x602 // constant bits present in every code

	YX1FF_temp_min = 16 // degC
	YX1FF_temp_max = 30 // degC

	yx1ff_unit_shift  = 4
	yx1ff_temp_shift  = 20
	yx1ff_sleep_shift = 24
	yx1ff_fan_shift   = 26
	yx1ff_power_shift = 28
	yx1ff_mode_shift  = 29

	yx1ff_temp_mask = 0x0f
	yx1ff_fan_mask  = 0x03
	yx1ff_mode_mask = 0x07
)

// Mode field patterns. Any other pattern is read as auto.
var yx1ffModeBits = map[Mode]uint32{
	ModeAuto: 0b000,
	ModeHeat: 0b001,
	ModeDry:  0b010,
	ModeCool: 0b100,
	ModeFan:  0b110,
}

// EncodeYX1FF assembles the 32-bit code for cmd.
// Celsius temperatures are clamped to 16..30. Fan speeds other than
// FanAuto..FanHigh are left out, as is the temperature when cmd.Unit is
// Fahrenheit. Use EncodeYX1FFStrict to get an error for those instead.
func EncodeYX1FF(cmd Command) uint32 {
	code := uint32(YX1FF_base)

	if cmd.Unit == Celsius {
		offset := byte(clamp(cmd.Temperature, YX1FF_temp_min, YX1FF_temp_max) - YX1FF_temp_min)
		// Reversing the byte leaves the nibble in the high half
		code |= uint32(ReverseBits(offset)>>4) << yx1ff_temp_shift
	}

	if cmd.Power {
		code |= 1 << yx1ff_power_shift
	}
	if cmd.Unit == Fahrenheit {
		code |= 1 << yx1ff_unit_shift
	}
	if cmd.Sleep {
		code |= 1 << yx1ff_sleep_shift
	}

	// Unknown modes have no entry and encode as auto
	code |= yx1ffModeBits[cmd.Mode] << yx1ff_mode_shift

	if cmd.Fan.valid() {
		code |= uint32(cmd.Fan) << yx1ff_fan_shift
	}

	return code
}

// DecodeYX1FF unpacks a received 32-bit code.
// Every code decodes to some Command; framing is not checked here.
func DecodeYX1FF(code uint32) Command {
	cmd := Command{
		Power: (code>>yx1ff_power_shift)&1 == 1,
		Sleep: (code>>yx1ff_sleep_shift)&1 == 1,
		Mode:  ModeAuto,
		Fan:   FanSpeed((code >> yx1ff_fan_shift) & yx1ff_fan_mask),
	}
	if (code>>yx1ff_unit_shift)&1 == 1 {
		cmd.Unit = Fahrenheit
	}

	nibble := byte((code >> yx1ff_temp_shift) & yx1ff_temp_mask)
	cmd.Temperature = int(ReverseBits(nibble) >> 4)
	if cmd.Unit == Celsius {
		cmd.Temperature += YX1FF_temp_min
	}

	bits := (code >> yx1ff_mode_shift) & yx1ff_mode_mask
	for mode, pattern := range yx1ffModeBits {
		if pattern == bits {
			cmd.Mode = mode
			break
		}
	}

	return cmd
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
