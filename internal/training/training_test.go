package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunningMetrics verifies the full metric triple for the reference
// running workout: 15000 steps over 1 h at 75 kg.
func TestRunningMetrics(t *testing.T) {
	tr := NewRunning(15000, 1, 75)

	require.InDelta(t, 9.75, tr.Distance(), 1e-12)
	require.InDelta(t, 9.75, tr.MeanSpeed(), 1e-12)
	// (18*9.75 - 20) * 75 / 1000 * 60
	require.InDelta(t, 699.75, tr.SpentCalories(), 1e-9)
}

// TestSwimmingDistanceUsesStrokeLength verifies that swimming distance is
// computed with the 1.38 m stroke length while the step-based kinds use
// 0.65 m for the same action count.
func TestSwimmingDistanceUsesStrokeLength(t *testing.T) {
	swim := NewSwimming(720, 1, 80, 25, 40)
	require.InDelta(t, 0.9936, swim.Distance(), 1e-12)

	run := NewRunning(720, 1, 80)
	walk := NewWalking(720, 1, 80, 180)
	require.InDelta(t, 0.468, run.Distance(), 1e-12)
	require.InDelta(t, 0.468, walk.Distance(), 1e-12)
}

// TestSwimmingMeanSpeedUsesPool verifies that swimming speed comes from the
// pool geometry, not from stroke count: 25 m * 40 lengths over 1 h is
// exactly 1 km/h.
func TestSwimmingMeanSpeedUsesPool(t *testing.T) {
	tr := NewSwimming(720, 1, 80, 25, 40)

	require.Equal(t, 1.0, tr.MeanSpeed())
	// (1.0 + 1.1) * 2 * 80
	require.InDelta(t, 336.0, tr.SpentCalories(), 1e-9)
}

// TestWalkingCaloriesFloorSpeedTerm pins the floor division of the squared
// mean speed by height. At 180 cm the floored term is zero, so only the
// weight term contributes; at 20 the quotient 34.2225/20 floors to 1, not
// 1.711.
func TestWalkingCaloriesFloorSpeedTerm(t *testing.T) {
	tall := NewWalking(9000, 1, 75, 180)
	// floor(5.85^2 / 180) = 0, leaving 0.035 * 75 * 60
	require.InDelta(t, 157.5, tall.SpentCalories(), 1e-9)

	short := NewWalking(9000, 1, 75, 20)
	// floor(5.85^2 / 20) = 1, giving (0.035*75 + 1*0.029*75) * 60
	require.InDelta(t, 288.0, short.SpentCalories(), 1e-9)
}

// TestDistanceNonNegative verifies that a zero action count yields zero
// distance for every kind.
func TestDistanceNonNegative(t *testing.T) {
	for _, tr := range []Training{
		NewRunning(0, 1, 75),
		NewWalking(0, 1, 75, 180),
		NewSwimming(0, 1, 80, 25, 40),
	} {
		require.Equal(t, 0.0, tr.Distance(), "kind %s", tr.Kind)
	}
}

// TestZeroDurationPropagates verifies that a zero duration is not guarded:
// the speed division yields +Inf, which flows through the calorie formula.
func TestZeroDurationPropagates(t *testing.T) {
	tr := NewRunning(15000, 0, 75)

	require.True(t, math.IsInf(tr.MeanSpeed(), 1))
	require.True(t, math.IsInf(tr.SpentCalories(), 0) || math.IsNaN(tr.SpentCalories()))
}

// TestKindString verifies the display names used in report lines.
func TestKindString(t *testing.T) {
	require.Equal(t, "Running", Running.String())
	require.Equal(t, "SportsWalking", Walking.String())
	require.Equal(t, "Swimming", Swimming.String())
}
