package bowling

import (
	"strconv"
	"strings"
)

// roll - one parsed token
type roll struct {
	pins   int
	strike bool
}

// ParseRoll parses a single roll token: a pin count 0-10 or the strike marker "X".
func ParseRoll(token string) (pins int, strike bool, err error) {
	token = strings.TrimSpace(token)
	if token == strikeMarker {
		return Pins, true, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 0 || n > Pins {
		return 0, false, inputErrorf("invalid roll %q", token)
	}
	return n, false, nil
}

func tokenize(rolls string) ([]roll, error) {
	if strings.TrimSpace(rolls) == "" {
		return nil, inputErrorf("no rolls given")
	}

	tokens := strings.Split(rolls, separator)
	out := make([]roll, 0, len(tokens))
	for _, token := range tokens {
		pins, strike, err := ParseRoll(token)
		if err != nil {
			return nil, err
		}
		out = append(out, roll{pins: pins, strike: strike})
	}
	return out, nil
}

// ToFrames groups a comma-separated roll sequence into frames.
//
// Frames 1-9 take a strike token alone as {10, 0} or pair two tokens. Once nine
// frames are built every remaining token goes into the final frame as-is.
// Pin sums are not checked here, see Validate. A sequence that stops before the
// tenth frame yields an in-progress game with fewer frames.
func ToFrames(rolls string) ([]Frame, error) {
	tokens, err := tokenize(rolls)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, FramesPerGame)
	for rest := tokens; len(rest) > 0; {
		if len(frames) == FramesPerGame-1 {
			final, err := finalFrame(rest)
			if err != nil {
				return nil, err
			}
			return append(frames, final), nil
		}

		frame, consumed, err := regularFrame(rest, len(frames)+1)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
		rest = rest[consumed:]
	}
	return frames, nil
}

func regularFrame(tokens []roll, number int) (RegularFrame, int, error) {
	if tokens[0].strike {
		return RegularFrame{First: Pins}, 1, nil
	}
	if len(tokens) < 2 {
		return RegularFrame{}, 0, inputErrorf("frame %d is missing its second roll", number)
	}
	if tokens[1].strike {
		return RegularFrame{}, 0, inputErrorf("strike marker as second roll of frame %d", number)
	}
	return RegularFrame{First: tokens[0].pins, Second: tokens[1].pins}, 2, nil
}

func finalFrame(tokens []roll) (FinalFrame, error) {
	if len(tokens) < 2 || len(tokens) > 3 {
		return nil, inputErrorf("frame %d has %d rolls, want 2 or 3", FramesPerGame, len(tokens))
	}

	frame := make(FinalFrame, len(tokens))
	for i, t := range tokens {
		frame[i] = t.pins
	}
	return frame, nil
}
