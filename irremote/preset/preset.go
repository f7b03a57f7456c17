// Package preset stores named air conditioner settings, such as "night" or
// "away", and loads them from YAML.
//
//	presets:
//	  night:
//	    power: true
//	    mode: cool
//	    fan: low
//	    sleep: true
//	    temperature: 26
package preset // import "github.com/manutenfruits/esp8266-ac-controller/irremote/preset"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/manutenfruits/esp8266-ac-controller/irremote/irprotocol"
)

// ErrUnknownPreset is returned when a name is not in the Set
var ErrUnknownPreset = errors.New("unknown preset")

// Set maps preset names to commands.
// A Set is not safe for concurrent use while it is being modified.
type Set map[string]irprotocol.Command

type document struct {
	Presets Set `yaml:"presets"`
}

// Parse reads a YAML preset document. Every preset must be sendable exactly
// as written (see irprotocol.Validate).
func Parse(data []byte) (Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	if doc.Presets == nil {
		doc.Presets = Set{}
	}
	if err := doc.Presets.validate(); err != nil {
		return nil, err
	}
	return doc.Presets, nil
}

// validate checks presets in name order and reports the first bad one
func (s Set) validate() error {
	for _, name := range s.Names() {
		if err := irprotocol.Validate(s[name]); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

// Load reads a YAML preset document from r
func Load(r io.Reader) (Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a YAML preset file. $VAR references are expanded from the
// environment before parsing.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Marshal writes s in the format read by Parse. It fails on any preset Parse
// would reject, such as a learned Fahrenheit code.
func Marshal(s Set) ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(document{Presets: s})
	if err != nil {
		return nil, fmt.Errorf("encoding presets: %w", err)
	}
	return data, nil
}

// Names returns the preset names in sorted order
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Word returns the code to transmit for the named preset
func (s Set) Word(name string) (uint32, error) {
	cmd, ok := s[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return irprotocol.EncodeYX1FF(cmd), nil
}

// Learn stores the settings carried by a received code under name,
// replacing any existing preset with that name. s must be non-nil, e.g.
// created with Set{} or returned by Parse. Codes that cannot be sent back
// exactly (Fahrenheit) are stored but rejected by Marshal.
func (s Set) Learn(name string, code uint32) irprotocol.Command {
	cmd := irprotocol.DecodeYX1FF(code)
	s[name] = cmd
	return cmd
}
