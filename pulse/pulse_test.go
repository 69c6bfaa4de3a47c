package pulse_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/snowops/pulse"
)

const (
	simple = `
broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

	withOutput = `
broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`

	// Two counters with first high emissions at presses 2 and 4 feeding
	// one threshold in front of rx.
	counters = `
broadcaster -> a1, b1
%a1 -> ia
&ia -> f
%b1 -> b2
%b2 -> ib
&ib -> f
&f -> rx`

	// a fires high on odd presses, so its first high press (1) is not
	// its period (2).
	offsetInputs = `
broadcaster -> a, b1
%a -> f
%b1 -> b2
%b2 -> f
&f -> rx`

	// Both inputs fire, but always in opposite presses: rx never gets low
	// although the first high presses (1 and 2) have an LCM of 2.
	antiPhase = `
broadcaster -> a, b1
%a -> f
%b1 -> ib
&ib -> f
&f -> rx`

	// x and y are both driven by s, so their cycles are not independent.
	sharedUpstream = `
broadcaster -> s
%s -> x, y
&x -> f
&y -> f
&f -> rx`
)

// directUntilLow presses a fresh copy of text until rx receives low.
func directUntilLow(t require.TestingT, text string, limit int) int {
	n, err := pulse.Parse(text)
	require.NoError(t, err)
	require.NoError(t, n.Watch("rx"))
	for i := 1; i <= limit; i++ {
		if n.Press().WatchedLow {
			return i
		}
	}
	return -1
}

type PulseSuite struct {
	suite.Suite
	logs *test.Hook
}

func (s *PulseSuite) SetupSuite() {
	s.logs = test.NewLocal(pulse.Log)
	pulse.Log.SetOutput(io.Discard)
	pulse.Log.SetLevel(logrus.DebugLevel)
}

func (s *PulseSuite) TearDownSuite() {
	pulse.Log.ReplaceHooks(make(logrus.LevelHooks))
	pulse.Log.SetOutput(os.Stderr)
	pulse.Log.SetLevel(logrus.InfoLevel)
}

func (s *PulseSuite) SetupTest() {
	s.logs.Reset()
}

// logged reports whether a debug line with msg was emitted.
func (s *PulseSuite) logged(msg string) bool {
	for _, e := range s.logs.AllEntries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func (s *PulseSuite) parse(text string) *pulse.Network {
	n, err := pulse.Parse(text)
	s.Require().NoError(err)
	return n
}

func (s *PulseSuite) TestSingleTickSimple() {
	n := s.parse(simple)
	st := n.Press()
	s.Equal(8, st.Low)
	s.Equal(4, st.High)
	s.Equal(1, n.Presses())
}

func (s *PulseSuite) TestCountPulsesSimple() {
	c := s.parse(simple).CountPulses(1000)
	s.Equal(8000, c.Low)
	s.Equal(4000, c.High)
	s.Equal(int64(32000000), c.Product())
}

func (s *PulseSuite) TestCountPulsesWithSink() {
	n := s.parse(withOutput)
	c := n.CountPulses(1000)
	s.Equal(4250, c.Low)
	s.Equal(2750, c.High)
	s.Equal(int64(11687500), c.Product())

	k, ok := n.Kind("output")
	s.True(ok)
	s.Equal(pulse.Sink, k)
	s.Equal([]string{"a", "b", "broadcaster", "con", "inv", "output"}, n.Names())
}

func (s *PulseSuite) TestCountPulsesResets() {
	n := s.parse(withOutput)
	first := n.CountPulses(4)
	second := n.CountPulses(4)
	s.Equal(first, second)
}

func (s *PulseSuite) TestWatch() {
	n := s.parse(withOutput)
	s.Require().NoError(n.Watch("output"))
	// con sees a and b both high only on some presses; output gets low
	// at least once in the first four.
	lows := 0
	for i := 0; i < 4; i++ {
		if n.Press().WatchedLow {
			lows++
		}
	}
	s.Positive(lows)
	s.ErrorIs(n.Watch("nope"), pulse.ErrUnknownModule)
}

func (s *PulseSuite) TestPressesUntilLow_Independent() {
	got, err := s.parse(counters).PressesUntilLow(context.Background(), "rx", 1000)
	s.Require().NoError(err)
	s.Equal(4, got)
	s.Equal(directUntilLow(s.T(), counters, 1000), got)
	s.True(s.logged("pulse: combining independent inputs by LCM"))
}

func (s *PulseSuite) TestPressesUntilLow_Direct() {
	n := s.parse("broadcaster -> a\n%a -> rx")
	got, err := n.PressesUntilLow(context.Background(), "rx", 10)
	s.Require().NoError(err)
	s.Equal(2, got)

	_, err = n.PressesUntilLow(context.Background(), "rx", 1)
	s.ErrorIs(err, pulse.ErrLimitExceeded)
}

func (s *PulseSuite) TestPressesUntilLow_OffsetInputMatchesDirect() {
	got, err := s.parse(offsetInputs).PressesUntilLow(context.Background(), "rx", 1000)
	s.Require().NoError(err)
	s.Equal(3, got)
	s.Equal(directUntilLow(s.T(), offsetInputs, 1000), got)
}

func (s *PulseSuite) TestPressesUntilLow_OffsetFallsBack() {
	s.Equal(-1, directUntilLow(s.T(), antiPhase, 50))

	_, err := s.parse(antiPhase).PressesUntilLow(context.Background(), "rx", 50)
	s.ErrorIs(err, pulse.ErrLimitExceeded)
	s.True(s.logged("pulse: input periods are offset"))
	s.True(s.logged("pulse: simulating directly"))
}

func (s *PulseSuite) TestPressesUntilLow_SharedUpstream() {
	got, err := s.parse(sharedUpstream).PressesUntilLow(context.Background(), "rx", 100)
	s.Require().NoError(err)
	s.Equal(2, got)
	s.Equal(directUntilLow(s.T(), sharedUpstream, 100), got)
	s.False(s.logged("pulse: combining independent inputs by LCM"))
	s.True(s.logged("pulse: simulating directly"))
}

func (s *PulseSuite) TestPressesUntilLow_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.parse(antiPhase).PressesUntilLow(ctx, "rx", 50)
	s.ErrorIs(err, context.Canceled)

	_, err = s.parse("broadcaster -> a\n%a -> rx").PressesUntilLow(ctx, "rx", 50)
	s.ErrorIs(err, context.Canceled)
}

func (s *PulseSuite) TestPressesUntilLow_Unknown() {
	_, err := s.parse(simple).PressesUntilLow(context.Background(), "rx", 10)
	s.ErrorIs(err, pulse.ErrUnknownModule)
}

func TestPulseSuite(t *testing.T) {
	suite.Run(t, new(PulseSuite))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no arrow", "broadcaster a", pulse.ErrMalformedLine},
		{"bad prefix", "broadcaster -> a\n$a -> b", pulse.ErrMalformedLine},
		{"empty dest", "broadcaster -> a,", pulse.ErrMalformedLine},
		{"duplicate", "broadcaster -> a\n%a -> b\n&a -> b", pulse.ErrDuplicateModule},
		{"no broadcaster", "%a -> b", pulse.ErrNoBroadcaster},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pulse.Parse(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ThresholdMemoryStartsLow(t *testing.T) {
	// A threshold with two inputs emits high until both have sent high.
	n, err := pulse.Parse("broadcaster -> x\n%x -> t\n&t -> out\n%y -> t")
	require.NoError(t, err)
	require.NoError(t, n.Watch("out"))
	for i := 0; i < 6; i++ {
		require.False(t, n.Press().WatchedLow, "press %d", i+1)
	}
}

func TestLCM(t *testing.T) {
	require.Equal(t, 12, pulse.LCM(4, 6))
	require.Equal(t, int64(3733*3911*4091), pulse.LCM[int64](3733, 3911, 4091))
	require.Equal(t, 0, pulse.LCM[int]())
	require.Equal(t, 0, pulse.LCM(3, 0))
	require.Equal(t, uint(6), pulse.GCD[uint](18, 12))
}
