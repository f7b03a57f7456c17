package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/manutenfruits/esp8266-ac-controller/irremote/irprotocol"
)

const presetsYAML = `
presets:
  night:
    power: true
    mode: cool
    fan: low
    sleep: true
    temperature: 26
  office:
    power: true
    mode: Cool
    fan: 2
    temperature: 24
    unit: celsius
  standby:
    mode: auto
    temperature: 16
`

func TestParse(t *testing.T) {
	c := qt.New(t)

	set, err := Parse([]byte(presetsYAML))
	c.Assert(err, qt.IsNil)
	c.Assert(set.Names(), qt.DeepEquals, []string{"night", "office", "standby"})
	c.Assert(set["night"], qt.DeepEquals, irprotocol.Command{
		Power:       true,
		Mode:        irprotocol.ModeCool,
		Fan:         irprotocol.FanLow,
		Sleep:       true,
		Temperature: 26,
	})
	c.Assert(set["office"], qt.DeepEquals, irprotocol.Command{
		Power:       true,
		Mode:        irprotocol.ModeCool,
		Fan:         irprotocol.FanMid,
		Temperature: 24,
		Unit:        irprotocol.Celsius,
	})

	code, err := set.Word("office")
	c.Assert(err, qt.IsNil)
	c.Assert(code, qt.Equals, uint32(0x98100602))
}

func TestParseEmpty(t *testing.T) {
	c := qt.New(t)

	set, err := Parse(nil)
	c.Assert(err, qt.IsNil)
	c.Assert(set, qt.HasLen, 0)
	c.Assert(set.Names(), qt.HasLen, 0)
}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		yaml string
		err  error
		msg  string
	}{
		{
			name: "fan",
			yaml: "presets:\n  boost:\n    mode: cool\n    fan: 4\n    temperature: 20\n",
			err:  irprotocol.ErrInvalidFanSpeed,
			msg:  `parsing presets: invalid fan speed: "4"`,
		},
		{
			name: "mode",
			yaml: "presets:\n  boost:\n    mode: turbo\n    temperature: 20\n",
			err:  irprotocol.ErrInvalidMode,
			msg:  `parsing presets: invalid mode: "turbo"`,
		},
		{
			name: "fahrenheit",
			yaml: "presets:\n  us:\n    mode: cool\n    temperature: 75\n    unit: f\n",
			err:  irprotocol.ErrUnsupportedUnit,
			msg:  `preset "us": unsupported temperature unit: fahrenheit`,
		},
		{
			name: "temperature",
			yaml: "presets:\n  sauna:\n    mode: heat\n    temperature: 45\n",
			err:  irprotocol.ErrTemperatureRange,
			msg:  `preset "sauna": temperature out of range: 45 degC not in 16\.\.30`,
		},
	}
	for _, data := range tests {
		c.Run(data.name, func(c *qt.C) {
			_, err := Parse([]byte(data.yaml))
			c.Assert(err, qt.ErrorIs, data.err)
			c.Assert(err, qt.ErrorMatches, data.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	c := qt.New(t)

	set, err := Load(strings.NewReader(presetsYAML))
	c.Assert(err, qt.IsNil)
	c.Assert(set, qt.HasLen, 3)
}

func TestLoadFile(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(c.TempDir(), "presets.yaml")
	err := os.WriteFile(path, []byte("presets:\n  eco:\n    power: true\n    mode: cool\n    temperature: ${ECO_TEMP}\n"), 0o644)
	c.Assert(err, qt.IsNil)
	c.Setenv("ECO_TEMP", "28")

	set, err := LoadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(set["eco"].Temperature, qt.Equals, 28)

	_, err = LoadFile(filepath.Join(c.TempDir(), "missing.yaml"))
	c.Assert(err, qt.ErrorMatches, `reading presets file: .*`)
}

func TestWord(t *testing.T) {
	c := qt.New(t)

	set := Set{"dry": {Power: true, Mode: irprotocol.ModeDry, Fan: irprotocol.FanLow, Temperature: 17}}
	code, err := set.Word("dry")
	c.Assert(err, qt.IsNil)
	c.Assert(code, qt.Equals, uint32(0x54800602))

	_, err = set.Word("wet")
	c.Assert(err, qt.ErrorIs, ErrUnknownPreset)
	c.Assert(err, qt.ErrorMatches, `unknown preset: "wet"`)
}

func TestLearn(t *testing.T) {
	c := qt.New(t)

	set := Set{}
	cmd := set.Learn("captured", 0x3D700602)
	c.Assert(cmd, qt.DeepEquals, irprotocol.Command{
		Power:       true,
		Mode:        irprotocol.ModeHeat,
		Fan:         irprotocol.FanHigh,
		Sleep:       true,
		Temperature: 30,
	})
	c.Assert(set["captured"], qt.DeepEquals, cmd)

	code, err := set.Word("captured")
	c.Assert(err, qt.IsNil)
	c.Assert(code, qt.Equals, uint32(0x3D700602))
}

func TestMarshal(t *testing.T) {
	c := qt.New(t)

	set, err := Parse([]byte(presetsYAML))
	c.Assert(err, qt.IsNil)

	data, err := Marshal(set)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Contains, "mode: cool")
	c.Assert(string(data), qt.Contains, "fan: low")
	c.Assert(string(data), qt.Contains, "unit: celsius")

	again, err := Parse(data)
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.DeepEquals, set)
}

func TestMarshalInvalid(t *testing.T) {
	c := qt.New(t)

	_, err := Marshal(Set{"bad": {Fan: 9}})
	c.Assert(err, qt.ErrorIs, irprotocol.ErrInvalidFanSpeed)
}

// A learned Fahrenheit code must not be written to a document Parse rejects
func TestMarshalLearnedFahrenheit(t *testing.T) {
	c := qt.New(t)

	set := Set{}
	cmd := set.Learn("us", 0x94000612)
	c.Assert(cmd.Unit, qt.Equals, irprotocol.Fahrenheit)

	_, err := Marshal(set)
	c.Assert(err, qt.ErrorIs, irprotocol.ErrUnsupportedUnit)
	c.Assert(err, qt.ErrorMatches, `preset "us": unsupported temperature unit: fahrenheit`)

	delete(set, "us")
	set.Learn("eu", 0x98100602)
	data, err := Marshal(set)
	c.Assert(err, qt.IsNil)

	again, err := Parse(data)
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.DeepEquals, set)
}
