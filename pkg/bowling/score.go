package bowling

// CalcScore returns the total score of the frames.
func CalcScore(frames []Frame) (int, error) {
	scores, err := FrameScores(frames)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, s := range scores {
		total += s
	}
	return total, nil
}

// FrameScores returns the points each frame contributes, bonuses included.
//
// A spare adds the next roll. A strike adds the next two rolls: the next frame's
// second roll, or, when the next frame is itself a strike and not the last frame,
// the first roll of the frame after it. The last frame gets no lookahead.
func FrameScores(frames []Frame) ([]int, error) {
	if err := checkShape(frames); err != nil {
		return nil, err
	}

	scores := make([]int, len(frames))
	for i := range frames {
		scores[i] = frameScore(frames, i)
	}
	return scores, nil
}

// Cumulative turns per-frame scores into the running totals shown on a score sheet.
func Cumulative(scores []int) []int {
	out := make([]int, len(scores))
	running := 0
	for i, s := range scores {
		running += s
		out[i] = running
	}
	return out
}

// frameScore expects frames already accepted by checkShape.
func frameScore(frames []Frame, i int) int {
	frame := frames[i]
	regular, ok := frame.(RegularFrame)
	if !ok || i == len(frames)-1 {
		return frame.Sum()
	}

	next := frames[i+1].Rolls()
	score := regular.Sum()
	if score == Pins {
		score += next[0]
	}
	if regular.IsStrike() {
		if next[0] == Pins && i+2 != len(frames) {
			score += frames[i+2].Rolls()[0]
		} else {
			score += next[1]
		}
	}
	return score
}

// checkShape rejects frame sequences the lookahead cannot walk safely.
func checkShape(frames []Frame) error {
	if len(frames) == 0 {
		return inputErrorf("no frames")
	}
	if len(frames) > FramesPerGame {
		return inputErrorf("%d frames, at most %d allowed", len(frames), FramesPerGame)
	}

	for i, f := range frames {
		switch f := f.(type) {
		case RegularFrame:
			if i == FramesPerGame-1 {
				return inputErrorf("frame %d must be a final frame", FramesPerGame)
			}
		case FinalFrame:
			if i != FramesPerGame-1 {
				return inputErrorf("final frame at position %d", i+1)
			}
			if len(f) < 2 || len(f) > 3 {
				return inputErrorf("frame %d has %d rolls, want 2 or 3", FramesPerGame, len(f))
			}
		default:
			return inputErrorf("frame %d is empty", i+1)
		}
	}
	return nil
}
