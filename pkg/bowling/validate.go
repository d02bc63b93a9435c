package bowling

// Validate checks frames against the physical limits of a complete game:
// exactly ten frames, no frame knocking down more pins than are standing, and
// a final frame that only gets its third roll after a strike or a spare.
func Validate(frames []Frame) error {
	if err := checkShape(frames); err != nil {
		return err
	}
	if len(frames) != FramesPerGame {
		return structureErrorf("game has %d frames, want %d", len(frames), FramesPerGame)
	}

	for i, f := range frames {
		switch f := f.(type) {
		case RegularFrame:
			if err := validateRegular(f, i+1); err != nil {
				return err
			}
		case FinalFrame:
			if err := validateFinal(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRegular(f RegularFrame, number int) error {
	if !inRange(f.First) || !inRange(f.Second) {
		return structureErrorf("frame %d has pins out of range: %v", number, f.Rolls())
	}
	if f.Sum() > Pins {
		return structureErrorf("frame %d knocks down %d pins", number, f.Sum())
	}
	return nil
}

func validateFinal(f FinalFrame) error {
	for _, pins := range f {
		if !inRange(pins) {
			return structureErrorf("frame %d has pins out of range: %v", FramesPerGame, []int(f))
		}
	}

	first, second := f[0], f[1]
	if first < Pins && first+second > Pins {
		return structureErrorf("frame %d knocks down %d pins", FramesPerGame, first+second)
	}

	bonus := first == Pins || first+second == Pins
	switch {
	case bonus && len(f) == 2:
		return structureErrorf("frame %d is missing its bonus roll", FramesPerGame)
	case !bonus && len(f) == 3:
		return structureErrorf("frame %d has a bonus roll without a strike or spare", FramesPerGame)
	}

	// After a strike the second and third rolls share a rack unless the second was also a strike.
	if len(f) == 3 && first == Pins && second < Pins && second+f[2] > Pins {
		return structureErrorf("frame %d bonus rolls knock down %d pins", FramesPerGame, second+f[2])
	}
	return nil
}

func inRange(pins int) bool {
	return pins >= 0 && pins <= Pins
}
