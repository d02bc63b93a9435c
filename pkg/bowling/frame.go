// Package bowling parses ten-pin roll sequences into frames and scores them.
package bowling

const (
	// FramesPerGame - number of frames in a complete game
	FramesPerGame = 10
	// Pins - pins standing at the start of a rack
	Pins = 10

	strikeMarker = "X"
	separator    = ","
)

// Frame is one turn of a game. Frames 1-9 are RegularFrame, frame 10 is FinalFrame.
type Frame interface {
	// Rolls returns a copy of the recorded pin counts.
	Rolls() []int
	Sum() int

	isFrame()
}

// RegularFrame - frames 1-9. A strike is recorded as {10, 0}.
type RegularFrame struct {
	First  int
	Second int
}

// Rolls returns both rolls, a strike as {10, 0}.
func (f RegularFrame) Rolls() []int {
	return []int{f.First, f.Second}
}

// Sum is the pins knocked down in the frame.
func (f RegularFrame) Sum() int {
	return f.First + f.Second
}

// IsStrike reports whether the first roll took down the whole rack.
func (f RegularFrame) IsStrike() bool {
	return f.First == Pins
}

// IsSpare reports whether both rolls together took down the whole rack.
func (f RegularFrame) IsSpare() bool {
	return f.First < Pins && f.Sum() == Pins
}

func (RegularFrame) isFrame() {}

// FinalFrame - frame 10, holds two or three rolls including its own bonus rolls.
type FinalFrame []int

// Rolls returns a copy of the recorded rolls.
func (f FinalFrame) Rolls() []int {
	return append([]int(nil), f...)
}

// Sum is the pins knocked down across all rolls, bonus rolls included.
func (f FinalFrame) Sum() int {
	sum := 0
	for _, pins := range f {
		sum += pins
	}
	return sum
}

func (FinalFrame) isFrame() {}

// marks counts strikes and spares thrown inside the final frame.
func (f FinalFrame) marks() (strikes, spares int) {
	standing, fresh := Pins, true
	for _, pins := range f {
		switch {
		case fresh && pins == Pins:
			strikes++
		case !fresh && pins == standing:
			spares++
		}

		if fresh && pins < Pins {
			standing, fresh = Pins-pins, false
		} else {
			standing, fresh = Pins, true
		}
	}
	return strikes, spares
}

// ToSlices converts frames to plain pin lists, the form used on the wire and in storage.
func ToSlices(frames []Frame) [][]int {
	out := make([][]int, len(frames))
	for i, f := range frames {
		out[i] = f.Rolls()
	}
	return out
}

// FromSlices rebuilds frames from plain pin lists. The pin list at index 9 becomes the final frame.
func FromSlices(rolls [][]int) ([]Frame, error) {
	frames := make([]Frame, 0, len(rolls))
	for i, r := range rolls {
		if i == FramesPerGame-1 {
			frames = append(frames, FinalFrame(append([]int(nil), r...)))
			continue
		}
		if len(r) != 2 {
			return nil, inputErrorf("frame %d has %d rolls, want 2", i+1, len(r))
		}
		frames = append(frames, RegularFrame{First: r[0], Second: r[1]})
	}

	if err := checkShape(frames); err != nil {
		return nil, err
	}
	return frames, nil
}
