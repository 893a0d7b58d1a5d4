package world

// Direction is a compass or vertical exit key.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Up        Direction = "up"
	Down      Direction = "down"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest, Up, Down}

// IsValid reports whether d is one of the known directions.
func (d Direction) IsValid() bool {
	for _, known := range Directions {
		if d == known {
			return true
		}
	}
	return false
}
