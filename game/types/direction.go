package types

// Unit direction vectors. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// IsDirection reports whether d is one of the four unit vectors.
func IsDirection(d Point) bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reverse of d.
func Opposite(d Point) Point {
	return Point{X: -d.X, Y: -d.Y}
}

// DirectionName returns a short label for logging.
func DirectionName(d Point) string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
