package grid

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all cardinal directions in clockwise order.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit offset of the direction.
func (d Direction) Delta() Point { return deltas[d&3] }

// Step returns the point one step from p in direction d.
func (d Direction) Step(p Point) Point { return p.Add(d.Delta()) }

// TurnClockwise returns the direction 90 degrees clockwise.
func (d Direction) TurnClockwise() Direction { return (d + 1) & 3 }

// TurnAnticlockwise returns the direction 90 degrees anticlockwise.
func (d Direction) TurnAnticlockwise() Direction { return (d + 3) & 3 }

// TurnAround returns the opposite direction.
func (d Direction) TurnAround() Direction { return (d + 2) & 3 }

func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}
