package model

import "encoding/json"

// Direction is one of the eight straight lines a word can run along.
type Direction int

const (
	LeftRight Direction = iota
	RightLeft
	TopBottom
	BottomTop
	DiagonalBottomRight
	DiagonalTopRight
	DiagonalBottomLeft
	DiagonalTopLeft
)

// AllDirections lists every direction in declaration order.
var AllDirections = []Direction{
	LeftRight, RightLeft, TopBottom, BottomTop,
	DiagonalBottomRight, DiagonalTopRight, DiagonalBottomLeft, DiagonalTopLeft,
}

var directionTokens = map[Direction]string{
	LeftRight:           "lr",
	RightLeft:           "rl",
	TopBottom:           "tb",
	BottomTop:           "bt",
	DiagonalBottomRight: "dbr",
	DiagonalTopRight:    "dtr",
	DiagonalBottomLeft:  "dbl",
	DiagonalTopLeft:     "dtl",
}

// Vector returns the fixed unit step for the direction.
// X grows rightwards, Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case LeftRight:
		return 1, 0
	case RightLeft:
		return -1, 0
	case TopBottom:
		return 0, 1
	case BottomTop:
		return 0, -1
	case DiagonalBottomRight:
		return 1, 1
	case DiagonalTopRight:
		return 1, -1
	case DiagonalBottomLeft:
		return -1, 1
	case DiagonalTopLeft:
		return -1, -1
	}
	return 0, 0
}

// String returns the short token used on the command line ("lr", "dbr", ...).
func (d Direction) String() string {
	if token, ok := directionTokens[d]; ok {
		return token
	}
	return "?"
}

// MarshalJSON encodes the direction as its short token.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a short token back into a Direction.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseDirection(token)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection resolves a short token to a Direction.
func ParseDirection(token string) (Direction, error) {
	for d, t := range directionTokens {
		if t == token {
			return d, nil
		}
	}
	return 0, ErrUnknownDirection
}
