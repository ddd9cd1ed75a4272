package amortize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	periods, err := Schedule(10_000, 0.005, 300)
	require.NoError(t, err)
	require.Len(t, periods, 37)

	first := periods[0]
	require.Equal(t, 1, first.Index)
	require.InDelta(t, 50, first.Interest, 1e-9)
	require.InDelta(t, 250, first.Repaid, 1e-9)
	require.InDelta(t, 9750, first.Balance, 1e-9)
	require.Equal(t, 1.0, first.Fraction)

	last := periods[len(periods)-1]
	require.Equal(t, 37, last.Index)
	require.Equal(t, 0.0, last.Balance)
	require.Less(t, last.Payment, 300.0)

	var (
		repaid   float64
		fraction float64
	)
	for i, p := range periods {
		require.Equal(t, i+1, p.Index)
		require.InDelta(t, p.Payment, p.Interest+p.Repaid, 1e-9)
		repaid += p.Repaid
		fraction += p.Fraction
	}
	require.InDelta(t, 10_000, repaid, 1e-6)

	n, err := NumberOfPayments(10_000, 0.005, 300)
	require.NoError(t, err)
	require.InDelta(t, n, fraction, 1e-9)
}

func TestScheduleFailures(t *testing.T) {
	_, err := Schedule(1000, 0.01, 10)
	require.ErrorIs(t, err, ErrInvalidPayment)

	_, err = Schedule(10_000, 0.005, 300, WithMaxPeriods(20))
	require.ErrorIs(t, err, ErrDidNotConverge)

	_, err = Schedule(-1, 0.005, 300)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestScheduleTrace(t *testing.T) {
	var buf bytes.Buffer
	periods, err := Schedule(1000, 0.01, 400, WithLogger(LogPretty(&buf)))
	require.NoError(t, err)
	require.Len(t, periods, 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], `period="1"`), lines[0])
	require.True(t, strings.HasSuffix(lines[2], `event="paid"`), lines[2])
}
