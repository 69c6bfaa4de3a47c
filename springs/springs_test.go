package springs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowops/springs"
)

const report = `
???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestArrangements_PerRecord(t *testing.T) {
	cases := []struct {
		line           string
		folded, unfold int64
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			rec, err := springs.ParseRecord(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.folded, rec.Arrangements())
			require.Equal(t, tc.unfold, rec.Unfold().Arrangements())
		})
	}
}

func TestSumArrangements(t *testing.T) {
	got, err := springs.SumArrangements(report, false)
	require.NoError(t, err)
	require.Equal(t, int64(21), got)

	got, err = springs.SumArrangements(report, true)
	require.NoError(t, err)
	require.Equal(t, int64(525152), got)
}

func TestUnfold(t *testing.T) {
	rec, err := springs.ParseRecord(".# 1")
	require.NoError(t, err)
	u := rec.Unfold()
	require.Equal(t, ".#?.#?.#?.#?.#", u.Pattern)
	require.Equal(t, []int{1, 1, 1, 1, 1}, u.Groups)
}

func TestParseRecord_Errors(t *testing.T) {
	for _, line := range []string{"???", "??? 1,x", "??? 0", "??? 1 2"} {
		_, err := springs.ParseRecord(line)
		require.ErrorIs(t, err, springs.ErrMalformedLine, line)
	}
	_, err := springs.ParseRecord("?a? 1")
	require.ErrorIs(t, err, springs.ErrBadSymbol)
}
