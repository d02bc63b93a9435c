package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat - a roll token is not a pin count 0-10 or the strike marker,
	// or the rolls cannot be arranged into frames.
	ErrInputFormat = errors.New("input format error")
	// ErrStructure - frames parse but break the physical limits of the game.
	ErrStructure = errors.New("structural inconsistency")
)

func inputErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInputFormat, fmt.Sprintf(format, args...))
}

func structureErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, args...))
}
