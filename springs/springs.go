// Package springs counts the ways unknown spring conditions can be filled
// in so that the runs of damaged springs match a list of group sizes.
//
// A record reads "???.### 1,1,3": '.' is operational, '#' damaged and '?'
// unknown. The count is a dynamic program over (position, group index),
// memoized per record.
package springs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/snowops/cycle"
)

// Spring conditions.
const (
	Operational = '.'
	Damaged     = '#'
	Unknown     = '?'
)

// UnfoldFactor is how many copies Unfold joins.
const UnfoldFactor = 5

var (
	// ErrMalformedLine indicates a record without a pattern and group list.
	ErrMalformedLine = errors.New("springs: malformed record")
	// ErrBadSymbol indicates a pattern character other than '.', '#', '?'.
	ErrBadSymbol = errors.New("springs: unexpected symbol")
)

// Record is one row of the condition report.
type Record struct {
	Pattern string
	Groups  []int
}

// ParseRecord reads "pattern g1,g2,...".
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	for i := 0; i < len(fields[0]); i++ {
		switch fields[0][i] {
		case Operational, Damaged, Unknown:
		default:
			return Record{}, fmt.Errorf("%w %q in %q", ErrBadSymbol, fields[0][i], line)
		}
	}
	rec := Record{Pattern: fields[0]}
	for _, f := range strings.Split(fields[1], ",") {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return Record{}, fmt.Errorf("%w: group %q in %q", ErrMalformedLine, f, line)
		}
		rec.Groups = append(rec.Groups, n)
	}
	return rec, nil
}

// Unfold joins UnfoldFactor copies of the pattern with '?' and repeats the
// groups as many times.
func (r Record) Unfold() Record {
	patterns := make([]string, UnfoldFactor)
	groups := make([]int, 0, len(r.Groups)*UnfoldFactor)
	for i := range patterns {
		patterns[i] = r.Pattern
		groups = append(groups, r.Groups...)
	}
	return Record{Pattern: strings.Join(patterns, string(Unknown)), Groups: groups}
}

type pos struct{ i, g int }

// Arrangements returns the number of ways to resolve every '?' in r.
func (r Record) Arrangements() int64 {
	memo := cycle.NewMemo[pos, int64]()
	var count func(i, g int) int64
	count = func(i, g int) int64 {
		if i >= len(r.Pattern) {
			if g == len(r.Groups) {
				return 1
			}
			return 0
		}
		return memo.GetOrCompute(pos{i, g}, func() int64 {
			var n int64
			c := r.Pattern[i]
			if c != Damaged {
				n += count(i+1, g)
			}
			if c != Operational && g < len(r.Groups) && r.fits(i, r.Groups[g]) {
				n += count(i+r.Groups[g]+1, g+1)
			}
			return n
		})
	}
	return count(0, 0)
}

// fits reports whether a damaged run of length size can start at i: no
// operational spring inside it and no damaged spring right after it.
func (r Record) fits(i, size int) bool {
	end := i + size
	if end > len(r.Pattern) || strings.IndexByte(r.Pattern[i:end], Operational) >= 0 {
		return false
	}
	return end == len(r.Pattern) || r.Pattern[end] != Damaged
}

// SumArrangements parses every non-blank line of input and sums the
// arrangement counts, unfolding each record first when unfold is set.
func SumArrangements(input string, unfold bool) (int64, error) {
	var total int64
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return 0, err
		}
		if unfold {
			rec = rec.Unfold()
		}
		total += rec.Arrangements()
	}
	return total, nil
}
