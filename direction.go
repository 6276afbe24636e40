package points

import (
	"fmt"
	"strings"
)

// Direction is a compass direction on the simulation grid
type Direction int8

// Cardinal directions, ordered clockwise from Up
const (
	Up Direction = iota
	Right
	Down
	Left
)

// None means no direction, or a rail that is not in use
const None Direction = -1

// Rotate turns d by amount quarter turns, clockwise when positive.
// None never rotates.
func (d Direction) Rotate(amount int) Direction {
	if !d.IsCardinal() {
		return None
	}
	return Direction(((int(d)+amount%4)%4 + 4) % 4)
}

// Reverse returns the opposite direction. None stays None.
func (d Direction) Reverse() Direction {
	return d.Rotate(2)
}

// IsCardinal reports whether d is one of Up, Right, Down or Left
func (d Direction) IsCardinal() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case None:
		return "NONE"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// ParseDirection parses a direction name, ignoring case.
// Compass names (north, east, south, west) are accepted as aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north", "n":
		return Up, nil
	case "right", "east", "e":
		return Right, nil
	case "down", "south", "s":
		return Down, nil
	case "left", "west", "w":
		return Left, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsCardinal() && d != None {
		return nil, fmt.Errorf("cannot marshal %s", d)
	}
	return []byte(strings.ToLower(d.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
