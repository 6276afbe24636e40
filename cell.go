package points

// Cell is a piece of track a vehicle can drive into.
// Enter takes the direction the vehicle is travelling and returns the
// direction it leaves in, or None when it cannot continue.
type Cell interface {
	Enter(direction Direction) (Direction, error)
}

var _ Cell = (*Junction)(nil)
