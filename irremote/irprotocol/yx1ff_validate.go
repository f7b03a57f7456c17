package irprotocol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFanSpeed is returned for fan speeds outside FanAuto..FanHigh
	ErrInvalidFanSpeed = errors.New("invalid fan speed")
	// ErrUnsupportedUnit is returned for Fahrenheit commands, whose temperature
	// cannot be encoded, and for unknown units
	ErrUnsupportedUnit = errors.New("unsupported temperature unit")
	// ErrTemperatureRange is returned for Celsius temperatures outside 16..30
	ErrTemperatureRange = errors.New("temperature out of range")
	// ErrInvalidMode is returned for modes without a code pattern
	ErrInvalidMode = errors.New("invalid mode")
)

// Validate reports the first setting in cmd that EncodeYX1FF would silently
// adjust or drop. A nil result means EncodeYX1FF sends cmd exactly.
func Validate(cmd Command) error {
	if _, ok := yx1ffModeBits[cmd.Mode]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidMode, cmd.Mode)
	}
	if !cmd.Fan.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFanSpeed, int(cmd.Fan))
	}
	if cmd.Unit != Celsius {
		return fmt.Errorf("%w: %v", ErrUnsupportedUnit, cmd.Unit)
	}
	if cmd.Temperature < YX1FF_temp_min || cmd.Temperature > YX1FF_temp_max {
		return fmt.Errorf("%w: %d degC not in %d..%d",
			ErrTemperatureRange, cmd.Temperature, YX1FF_temp_min, YX1FF_temp_max)
	}
	return nil
}

// EncodeYX1FFStrict is EncodeYX1FF for callers that would rather fail than
// have settings clamped or dropped
func EncodeYX1FFStrict(cmd Command) (uint32, error) {
	if err := Validate(cmd); err != nil {
		return 0, err
	}
	return EncodeYX1FF(cmd), nil
}
