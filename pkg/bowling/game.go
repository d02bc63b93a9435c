package bowling

// Result - a scored game
type Result struct {
	Frames      []Frame
	FrameScores []int
	Cumulative  []int
	Total       int
	Strikes     int
	Spares      int
	// Complete is false for a game that stopped before the tenth frame.
	Complete bool
}

// Score runs the whole pipeline on a roll string: frames, optional validation, score.
// With strict unset the rolls are scored as given, like the reference scorer.
func Score(rolls string, strict bool) (Result, error) {
	frames, err := ToFrames(rolls)
	if err != nil {
		return Result{}, err
	}

	if strict {
		if err := Validate(frames); err != nil {
			return Result{}, err
		}
	}

	scores, err := FrameScores(frames)
	if err != nil {
		return Result{}, err
	}
	cumulative := Cumulative(scores)

	strikes, spares := countMarks(frames)
	return Result{
		Frames:      frames,
		FrameScores: scores,
		Cumulative:  cumulative,
		Total:       cumulative[len(cumulative)-1],
		Strikes:     strikes,
		Spares:      spares,
		Complete:    len(frames) == FramesPerGame,
	}, nil
}

func countMarks(frames []Frame) (strikes, spares int) {
	for _, f := range frames {
		switch f := f.(type) {
		case RegularFrame:
			if f.IsStrike() {
				strikes++
			} else if f.IsSpare() {
				spares++
			}
		case FinalFrame:
			s, p := f.marks()
			strikes += s
			spares += p
		}
	}
	return strikes, spares
}
