package bowling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rollsOf(tokens ...string) string {
	return strings.Join(tokens, ",")
}

func repeat(token string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = token
	}
	return out
}

func TestCalcScore(t *testing.T) {
	tests := []struct {
		name   string
		frames [][]int
		want   int
	}{
		{
			name:   "spare bonus in final frame",
			frames: [][]int{{6, 3}, {9, 0}, {0, 3}, {8, 2}, {7, 3}, {10, 0}, {9, 1}, {8, 0}, {10, 0}, {6, 4, 5}},
			want:   139,
		},
		{
			name:   "strike before three final strikes",
			frames: [][]int{{6, 3}, {9, 0}, {0, 3}, {8, 2}, {7, 3}, {10, 0}, {9, 1}, {8, 0}, {10, 0}, {10, 10, 10}},
			want:   164,
		},
		{
			name:   "consecutive strikes",
			frames: [][]int{{0, 10}, {1, 5}, {0, 0}, {0, 0}, {10, 0}, {10, 0}, {10, 0}, {5, 1}, {8, 1}, {0, 4}},
			want:   107,
		},
		{
			name:   "strike then gutters",
			frames: [][]int{{6, 3}, {9, 0}, {0, 3}, {8, 2}, {7, 3}, {10, 0}, {9, 1}, {8, 0}, {10, 0}, {10, 0, 0}},
			want:   134,
		},
		{
			name:   "perfect game",
			frames: [][]int{{10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 0}, {10, 10, 10}},
			want:   300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := FromSlices(tt.frames)
			require.NoError(t, err)

			got, err := CalcScore(frames)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_Pipeline(t *testing.T) {
	tests := map[string]struct {
		rolls string
		want  int
	}{
		"fixture 139":          {rolls: "6,3,9,0,0,3,8,2,7,3,X,9,1,8,0,X,6,4,5", want: 139},
		"fixture 164":          {rolls: "6,3,9,0,0,3,8,2,7,3,X,9,1,8,0,X,X,X,X", want: 164},
		"fixture 107":          {rolls: "0,10,1,5,0,0,0,0,X,X,X,5,1,8,1,0,4", want: 107},
		"fixture 134":          {rolls: "6,3,9,0,0,3,8,2,7,3,X,9,1,8,0,X,X,0,0", want: 134},
		"perfect game":         {rolls: rollsOf(repeat("X", 12)...), want: 300},
		"gutter game":          {rolls: rollsOf(repeat("0", 20)...), want: 0},
		"all spares of five":   {rolls: rollsOf(repeat("5", 21)...), want: 150},
		"spare then three":     {rolls: rollsOf(append([]string{"5", "5", "3"}, repeat("0", 17)...)...), want: 16},
		"nine strikes and out": {rolls: rollsOf(append(repeat("X", 9), "0", "0")...), want: 240},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := Score(tt.rolls, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Total)
			assert.True(t, res.Complete)

			strict, err := Score(tt.rolls, true)
			require.NoError(t, err)
			assert.Equal(t, res, strict)
		})
	}
}

func TestScore_OpenFramesSumPins(t *testing.T) {
	games := []string{
		"1,2,3,4,5,4,3,2,1,0,0,1,2,3,4,5,6,3,2,1",
		"9,0,9,0,9,0,9,0,9,0,9,0,9,0,9,0,9,0,9,0",
		"0,9,1,8,2,7,3,6,4,5,5,4,6,3,7,2,8,1,9,0",
	}

	for _, rolls := range games {
		sum := 0
		for _, token := range strings.Split(rolls, ",") {
			pins, _, err := ParseRoll(token)
			require.NoError(t, err)
			sum += pins
		}

		res, err := Score(rolls, true)
		require.NoError(t, err)
		assert.Equal(t, sum, res.Total, rolls)
		assert.Zero(t, res.Strikes)
		assert.Zero(t, res.Spares)
	}
}

func TestScore_InProgressGame(t *testing.T) {
	// Nine frames only: the tenth frame was never bowled.
	rolls := rollsOf(append([]string{"5", "5", "3"}, repeat("0", 15)...)...)

	res, err := Score(rolls, false)
	require.NoError(t, err)
	assert.Equal(t, 16, res.Total)
	assert.False(t, res.Complete)
	assert.Len(t, res.Frames, 9)

	_, err = Score(rolls, true)
	assert.ErrorIs(t, err, ErrStructure)
}

func TestScore_InProgressEndsWithStrikes(t *testing.T) {
	res, err := Score("X,X", false)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 10}, res.FrameScores)
	assert.Equal(t, 30, res.Total)
}

func TestScore_SheetAndMarks(t *testing.T) {
	res, err := Score("6,3,9,0,0,3,8,2,7,3,X,9,1,8,0,X,6,4,5", false)
	require.NoError(t, err)

	assert.Equal(t, []int{9, 9, 3, 17, 20, 20, 18, 8, 20, 15}, res.FrameScores)
	assert.Equal(t, []int{9, 18, 21, 38, 58, 78, 96, 104, 124, 139}, res.Cumulative)
	assert.Equal(t, 2, res.Strikes)
	assert.Equal(t, 4, res.Spares)

	perfect, err := Score(rollsOf(repeat("X", 12)...), false)
	require.NoError(t, err)
	assert.Equal(t, 12, perfect.Strikes)
	assert.Zero(t, perfect.Spares)
}

func TestScore_Deterministic(t *testing.T) {
	rolls := "0,10,1,5,0,0,0,0,X,X,X,5,1,8,1,0,4"

	first, err := Score(rolls, false)
	require.NoError(t, err)
	second, err := Score(rolls, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 107, second.Total)
}

func TestScore_PermissiveScoresIllegalFrames(t *testing.T) {
	rolls := rollsOf(append([]string{"10", "5"}, repeat("0", 18)...)...)

	res, err := Score(rolls, false)
	require.NoError(t, err)
	assert.Equal(t, 15, res.Total)

	_, err = Score(rolls, true)
	assert.ErrorIs(t, err, ErrStructure)
}

func TestScore_InputFormatError(t *testing.T) {
	res, err := Score("6,3,Y", false)
	assert.ErrorIs(t, err, ErrInputFormat)
	assert.Zero(t, res)
}

func TestCalcScore_RejectsUnwalkableFrames(t *testing.T) {
	regular := RegularFrame{First: 3, Second: 4}
	nine := []Frame{regular, regular, regular, regular, regular, regular, regular, regular, regular}

	tests := map[string][]Frame{
		"no frames":            nil,
		"eleven frames":        append(append([]Frame{}, nine...), FinalFrame{1, 2}, regular),
		"final frame too soon": {regular, FinalFrame{10, 10, 10}, regular},
		"tenth frame regular":  append(append([]Frame{}, nine...), regular),
		"short final frame":    append(append([]Frame{}, nine...), FinalFrame{10}),
		"long final frame":     append(append([]Frame{}, nine...), FinalFrame{10, 10, 10, 10}),
		"nil frame":            {regular, nil},
	}

	for name, frames := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := CalcScore(frames)
			assert.ErrorIs(t, err, ErrInputFormat)
		})
	}
}

func TestCumulative(t *testing.T) {
	assert.Equal(t, []int{1, 3, 6}, Cumulative([]int{1, 2, 3}))
	assert.Empty(t, Cumulative(nil))
}
