package anim

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Behaviour defines how a channel is sampled outside its key range.
type Behaviour int

const (
	// Default ignores the channel and uses the node's rest value.
	Default Behaviour = iota
	// Constant holds the nearest key value.
	Constant
	// Linear extrapolates from the two nearest keys.
	Linear
	// Repeat wraps time into the key range.
	Repeat
)

// String returns the behaviour name.
func (b Behaviour) String() string {
	switch b {
	case Default:
		return "default"
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// ParseBehaviour parses a behaviour name, case-insensitively.
// An empty string is Default.
func ParseBehaviour(s string) (Behaviour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "constant":
		return Constant, nil
	case "linear":
		return Linear, nil
	case "repeat":
		return Repeat, nil
	default:
		return Default, fmt.Errorf("%w: %q", ErrUnknownBehaviour, s)
	}
}

// Code returns the numeric value used by the native import library
// (aiAnimBehaviour).
func (b Behaviour) Code() uint32 {
	return uint32(b)
}

// BehaviourFromCode converts a native aiAnimBehaviour value.
func BehaviourFromCode(code uint32) (Behaviour, error) {
	if code > uint32(Repeat) {
		return Default, fmt.Errorf("%w: code %d", ErrUnknownBehaviour, code)
	}
	return Behaviour(code), nil
}

// MarshalYAML encodes the behaviour by name.
func (b Behaviour) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a behaviour name.
func (b *Behaviour) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBehaviour(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*b = parsed
	return nil
}
