package elevation

import (
	"errors"
	"fmt"
)

// Marker symbols recognized in a heightmap.
const (
	// Start marks the single source cell; it sits at elevation Min.
	Start byte = 'S'
	// Goal marks the single target cell; it sits at elevation Max.
	Goal byte = 'E'
)

// ErrInvalidSymbol indicates a byte that is neither a lowercase letter nor a marker.
var ErrInvalidSymbol = errors.New("elevation: invalid symbol")

// Level is an elevation rank in the closed range [Min, Max].
type Level uint8

const (
	// Min is the lowest elevation ('a' and the start marker).
	Min Level = 0
	// Max is the highest elevation ('z' and the goal marker).
	Max Level = 25
	// Levels is the number of distinct elevations.
	Levels = int(Max) + 1
)

// Of returns the elevation of symbol.
// Returns ErrInvalidSymbol (wrapped with the offending byte) for unknown symbols.
func Of(symbol byte) (Level, error) {
	switch {
	case symbol >= 'a' && symbol <= 'z':
		return Level(symbol - 'a'), nil
	case symbol == Start:
		return Min, nil
	case symbol == Goal:
		return Max, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
}

// Valid reports whether symbol can appear in a heightmap.
func Valid(symbol byte) bool {
	_, err := Of(symbol)
	return err == nil
}

// CanStepTo reports whether a move from l onto a cell at next obeys the
// climb constraint.
func (l Level) CanStepTo(next Level) bool {
	return next <= l+1
}

// String renders the level as its lowercase letter.
func (l Level) String() string {
	if l > Max {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return string(rune('a' + l))
}
