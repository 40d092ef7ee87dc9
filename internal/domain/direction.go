package domain

type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionRight
	DirectionDown
	DirectionLeft
)

var directionDeltas = [...]Tile{
	DirectionNone:  {0, 0},
	DirectionUp:    {0, -1},
	DirectionRight: {1, 0},
	DirectionDown:  {0, 1},
	DirectionLeft:  {-1, 0},
}

var directionNames = [...]string{
	DirectionNone:  "NONE",
	DirectionUp:    "UP",
	DirectionRight: "RIGHT",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionLeft
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// Delta is the unit step of d. DirectionNone and unknown values yield (0,0).
func (d Direction) Delta() Tile {
	if d < 0 || int(d) >= len(directionDeltas) {
		return Tile{}
	}
	return directionDeltas[d]
}

// IsOpposite never holds for DirectionNone, so a snake that has not moved
// yet may start in any direction.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "UNKNOWN"
	}
	return directionNames[d]
}
