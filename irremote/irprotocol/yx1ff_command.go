package irprotocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the operating mode of the air conditioner
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeCool
	ModeDry
	ModeFan
	ModeHeat
)

var modeNames = [...]string{
	ModeAuto: "auto",
	ModeCool: "cool",
	ModeDry:  "dry",
	ModeFan:  "fan",
	ModeHeat: "heat",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are case-insensitive.
func (m *Mode) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range modeNames {
		if n == name {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, text)
}

// FanSpeed is the fan setting. Only FanAuto through FanHigh can be sent.
type FanSpeed int

const (
	FanAuto FanSpeed = iota
	FanLow
	FanMid
	FanHigh
)

var fanNames = [...]string{
	FanAuto: "auto",
	FanLow:  "low",
	FanMid:  "mid",
	FanHigh: "high",
}

func (f FanSpeed) valid() bool {
	return f >= FanAuto && f <= FanHigh
}

func (f FanSpeed) String() string {
	if f.valid() {
		return fanNames[f]
	}
	return "FanSpeed(" + strconv.Itoa(int(f)) + ")"
}

// MarshalText implements encoding.TextMarshaler
func (f FanSpeed) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFanSpeed, f)
	}
	return []byte(fanNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepts a speed name or its number, e.g. "mid" or "2".
func (f *FanSpeed) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range fanNames {
		if n == name {
			*f = FanSpeed(i)
			return nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && FanSpeed(n).valid() {
		*f = FanSpeed(n)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidFanSpeed, text)
}

// Unit is the temperature scale shown on the unit display
type Unit uint8

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// label is the short suffix printed after a temperature
func (u Unit) label() string {
	if u == Fahrenheit {
		return "degF"
	}
	return "degC"
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	if u > Fahrenheit {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedUnit, u)
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepts "celsius"/"c" and "fahrenheit"/"f".
func (u *Unit) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "celsius", "c":
		*u = Celsius
	case "fahrenheit", "f":
		*u = Fahrenheit
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedUnit, text)
	}
	return nil
}

// Command holds the settings carried by a single YX1FF remote control code.
// The zero value is: off, auto mode, auto fan, sleep off, 0 degC (sent as 16).
type Command struct {
	Power       bool     `yaml:"power"`
	Mode        Mode     `yaml:"mode"`
	Fan         FanSpeed `yaml:"fan"`
	Sleep       bool     `yaml:"sleep"`
	Temperature int      `yaml:"temperature"`
	Unit        Unit     `yaml:"unit"`
}

// String returns the same multi-line text as DescribeYX1FF
func (c Command) String() string {
	return DescribeYX1FF(c)
}
