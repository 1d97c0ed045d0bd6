package starfighter

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-starfighter/internal/core"
)

// ErrInvalidDirection is returned when a direction set that the input
// reducer can never produce reaches the mover.
var ErrInvalidDirection = errors.New("starfighter: invalid direction combination")

// Displacement converts held directions into a positional delta of length d.
// Diagonals move d/√2 along each axis.
func Displacement(dirs DirectionSet, d float64) (core.Vec, error) {
	k := d / math.Sqrt2
	switch dirs {
	case Stop:
		return core.Vec{}, nil
	case Up:
		return core.Vec{Y: -d}, nil
	case Down:
		return core.Vec{Y: d}, nil
	case Left:
		return core.Vec{X: -d}, nil
	case Right:
		return core.Vec{X: d}, nil
	case Down | Left:
		return core.Vec{X: -k, Y: k}, nil
	case Up | Right:
		return core.Vec{X: k, Y: -k}, nil
	case Down | Right:
		return core.Vec{X: k, Y: k}, nil
	case Left | Up:
		return core.Vec{X: -k, Y: -k}, nil
	}
	return core.Vec{}, fmt.Errorf("%w: %s", ErrInvalidDirection, dirs)
}
