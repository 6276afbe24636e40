package points

import (
	"fmt"
	"strings"
)

// JunctionType selects the switching behaviour of a junction
type JunctionType int

const (
	// Lazy routes base arrivals to whichever arm a vehicle last came in on
	Lazy JunctionType = iota
	// Sprung always routes base arrivals to the default arm
	Sprung
	// Alternating toggles between the two arms on every base arrival
	Alternating
	// OneWay only accepts arrivals from the arms
	OneWay
)

// JunctionTypes lists every known junction type
var JunctionTypes = []JunctionType{Lazy, Sprung, Alternating, OneWay}

// Valid reports whether t is one of the known junction types
func (t JunctionType) Valid() bool {
	return t >= Lazy && t <= OneWay
}

func (t JunctionType) String() string {
	switch t {
	case Lazy:
		return "lazy"
	case Sprung:
		return "sprung"
	case Alternating:
		return "alternating"
	case OneWay:
		return "one-way"
	default:
		return fmt.Sprintf("JunctionType(%d)", int(t))
	}
}

// ParseJunctionType parses a junction type name such as "lazy" or "one-way"
func ParseJunctionType(s string) (JunctionType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	switch name {
	case "lazy":
		return Lazy, nil
	case "sprung":
		return Sprung, nil
	case "alternating":
		return Alternating, nil
	case "one-way", "oneway":
		return OneWay, nil
	}
	return 0, fmt.Errorf("unknown junction type %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (t JunctionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *JunctionType) UnmarshalText(text []byte) error {
	parsed, err := ParseJunctionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
