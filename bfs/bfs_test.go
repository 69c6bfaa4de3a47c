package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowops/bfs"
)

// chain returns a transition over ints 0..n where i → i+1.
func chain(n int) bfs.Transition[int] {
	return func(i int) []int {
		if i >= n {
			return nil
		}
		return []int{i + 1}
	}
}

// cycle4 is an undirected 4-cycle A–B–C–D–A.
func cycle4(s string) []string {
	adj := map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C", "A"},
	}
	return adj[s]
}

// TestExplore_Errors verifies that invalid inputs and options are rejected.
func TestExplore_Errors(t *testing.T) {
	if _, err := bfs.Explore(nil, chain(3)); !errors.Is(err, bfs.ErrNoStart) {
		t.Errorf("no start: want ErrNoStart, got %v", err)
	}
	if _, err := bfs.Explore([]int{0}, nil); !errors.Is(err, bfs.ErrNilTransition) {
		t.Errorf("nil transition: want ErrNilTransition, got %v", err)
	}
	if _, err := bfs.Explore([]int{0}, chain(3), bfs.WithMaxDepth[int](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestExplore_CycleAndDepths covers a simple cycle and checks depths.
func TestExplore_CycleAndDepths(t *testing.T) {
	res, err := bfs.Explore([]string{"A"}, cycle4)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, 2, res.MaxDepth())
	require.Equal(t, 4, res.Len())
}

// TestExplore_MultiStart seeds several states at depth 0 and collapses duplicates.
func TestExplore_MultiStart(t *testing.T) {
	res, err := bfs.Explore([]string{"A", "C", "A"}, cycle4)
	require.NoError(t, err)
	require.Equal(t, 4, res.Len())
	require.Equal(t, 0, res.Depth["C"])
	require.Equal(t, 1, res.Depth["D"])
	require.Equal(t, 1, res.MaxDepth())
}

// TestExplore_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestExplore_MaxDepth(t *testing.T) {
	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{0, []int{0, 1, 2, 3}},
		{10, []int{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(strconv.Itoa(tc.depth), func(t *testing.T) {
			res, err := bfs.Explore([]int{0}, chain(3), bfs.WithMaxDepth[int](tc.depth))
			require.NoError(t, err)
			if !reflect.DeepEqual(res.Order, tc.want) {
				t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
			}
		})
	}
}

// TestExplore_ExactlyOnce ensures self-loops and repeated successors do not enqueue twice.
func TestExplore_ExactlyOnce(t *testing.T) {
	next := func(s string) []string {
		if s == "A" {
			return []string{"A", "B", "B"}
		}
		return []string{"A"}
	}
	visits := map[string]int{}
	res, err := bfs.Explore([]string{"A"}, next,
		bfs.WithOnVisit(func(s string, _ int) error { visits[s]++; return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
	require.Equal(t, map[string]int{"A": 1, "B": 1}, visits)
}

// TestExplore_Idempotent runs the same exploration twice and expects identical results.
func TestExplore_Idempotent(t *testing.T) {
	first, err := bfs.Explore([]string{"B"}, cycle4)
	require.NoError(t, err)
	second, err := bfs.Explore([]string{"B"}, cycle4)
	require.NoError(t, err)
	require.Equal(t, first.Order, second.Order)
	require.Equal(t, first.Depth, second.Depth)
}

// TestExplore_Hooks asserts that hooks fire in the expected sequence and count.
func TestExplore_Hooks(t *testing.T) {
	var enq, vis []string
	entry := func(prefix string, s, d int) string {
		return prefix + ":" + strconv.Itoa(s) + "@" + strconv.Itoa(d)
	}
	_, err := bfs.Explore([]int{0}, chain(2),
		bfs.WithOnEnqueue(func(s, d int) { enq = append(enq, entry("e", s, d)) }),
		bfs.WithOnVisit(func(s, d int) error { vis = append(vis, entry("v", s, d)); return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"e:0@0", "e:1@1", "e:2@2"}, enq)
	require.Equal(t, []string{"v:0@0", "v:1@1", "v:2@2"}, vis)
}

// TestExplore_HookAbort stops exploration when OnVisit fails.
func TestExplore_HookAbort(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.Explore([]int{0}, chain(5),
		bfs.WithOnVisit(func(s, _ int) error {
			if s == 2 {
				return boom
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, boom)
	require.True(t, strings.Contains(err.Error(), "OnVisit error at 2"))
}

// TestExplore_PathTo covers both trivial (start→start) and unreachable targets.
func TestExplore_PathTo(t *testing.T) {
	res, err := bfs.Explore([]string{"A"}, cycle4)
	require.NoError(t, err)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)

	path, err = res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("Z")
	require.Error(t, err)
	require.False(t, res.Visited("Z"))
}

// TestExplore_Cancellation verifies that a cancelled context halts exploration promptly.
func TestExplore_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.Explore([]int{0}, chain(100), bfs.WithContext[int](ctx))
	require.ErrorIs(t, err, context.Canceled)
}
