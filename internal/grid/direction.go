package grid

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every cardinal direction in clockwise order from North.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Clockwise returns the direction a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Horizontal reports whether the direction travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
