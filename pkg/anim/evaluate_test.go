package anim

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/assetcore/pkg/math"
)

const eps = 1e-5

func vecKeys(pairs ...any) []VectorKey {
	keys := make([]VectorKey, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		keys = append(keys, VectorKey{Time: pairs[i].(float64), Value: pairs[i+1].(math.Vec3)})
	}
	return keys
}

func evalVec(t *testing.T, keys []VectorKey, at float64, pre, post Behaviour, rest math.Vec3) math.Vec3 {
	t.Helper()
	v, err := Evaluate(keys, at, pre, post, rest, LerpVec3)
	require.NoError(t, err)
	return v
}

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestEvaluateEmptyChannelReturnsRest(t *testing.T) {
	rest := math.Vec3{X: 7, Y: 8, Z: 9}
	for _, b := range []Behaviour{Default, Constant, Linear, Repeat} {
		got := evalVec(t, nil, 3, b, b, rest)
		assert.Equal(t, rest, got, b.String())
	}
}

func TestEvaluateInvalidTime(t *testing.T) {
	keys := vecKeys(0.0, math.Vec3{}, 1.0, math.Vec3{X: 1})
	for _, at := range []float64{gomath.NaN(), gomath.Inf(1), gomath.Inf(-1)} {
		_, err := Evaluate(keys, at, Constant, Constant, math.Vec3{}, LerpVec3)
		assert.ErrorIs(t, err, ErrInvalidTime)
	}

	// An empty channel still rejects a bad time rather than silently returning rest
	_, err := Evaluate[math.Vec3](nil, gomath.NaN(), Default, Default, math.Vec3{}, LerpVec3)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestEvaluateKeyTimesAreFixedPoints(t *testing.T) {
	keys := vecKeys(
		-2.0, math.Vec3{X: 1, Y: 1, Z: 1},
		0.0, math.Vec3{X: 0.3, Y: -4, Z: 2},
		1.5, math.Vec3{X: 5, Y: 5, Z: 5},
		7.25, math.Vec3{X: -1, Y: 0.1, Z: 9},
	)
	for _, b := range []Behaviour{Default, Constant, Linear, Repeat} {
		for _, k := range keys {
			got := evalVec(t, keys, k.Time, b, b, math.Vec3{X: 100})
			assert.Equal(t, k.Value, got, "key at %v with %s", k.Time, b)
		}
	}
}

func TestEvaluateInterpolatesConvexly(t *testing.T) {
	v0 := math.Vec3{X: 0, Y: 10, Z: -4}
	v1 := math.Vec3{X: 8, Y: 2, Z: 4}
	keys := vecKeys(2.0, v0, 6.0, v1)

	prev := v0
	for step := 1; step < 40; step++ {
		at := 2.0 + 4.0*float64(step)/40
		got := evalVec(t, keys, at, Default, Default, math.Vec3{})

		// Each coordinate stays between the bracketing keys and moves monotonically toward v1
		assert.True(t, got.X >= prev.X-eps && got.X <= v1.X+eps, "x at %v", at)
		assert.True(t, got.Y <= prev.Y+eps && got.Y >= v1.Y-eps, "y at %v", at)
		assert.True(t, got.Z >= prev.Z-eps && got.Z <= v1.Z+eps, "z at %v", at)
		prev = got
	}
}

func TestEvaluateBinarySearchPicksBracket(t *testing.T) {
	keys := make([]VectorKey, 0, 100)
	for i := 0; i < 100; i++ {
		keys = append(keys, VectorKey{Time: float64(i), Value: math.Vec3{X: float32(i * i)}})
	}

	got := evalVec(t, keys, 41.25, Default, Default, math.Vec3{})
	want := math.Vec3{X: 41 * 41}.Lerp(math.Vec3{X: 42 * 42}, 0.25)
	assertVec(t, want, got)
}

func TestEvaluateConstantOutsideRange(t *testing.T) {
	first := math.Vec3{X: 1, Y: 2, Z: 3}
	last := math.Vec3{X: 4, Y: 5, Z: 6}
	keys := vecKeys(0.0, first, 10.0, last)

	for _, at := range []float64{-0.001, -5, -1e9} {
		assert.Equal(t, first, evalVec(t, keys, at, Constant, Constant, math.Vec3{}))
	}
	for _, at := range []float64{10.001, 15, 1e9} {
		assert.Equal(t, last, evalVec(t, keys, at, Constant, Constant, math.Vec3{}))
	}
}

func TestEvaluateDefaultOutsideRangeReturnsRest(t *testing.T) {
	rest := math.Vec3{X: -9, Y: -9, Z: -9}
	keys := vecKeys(0.0, math.Vec3{X: 1}, 5.0, math.Vec3{X: 2}, 10.0, math.Vec3{X: 3})

	assert.Equal(t, rest, evalVec(t, keys, -1, Default, Constant, rest))
	assert.Equal(t, rest, evalVec(t, keys, 11, Constant, Default, rest))
	assert.Equal(t, math.Vec3{X: 1}, evalVec(t, keys, -1, Constant, Default, rest))
}

func TestEvaluateSingleKey(t *testing.T) {
	v := math.Vec3{X: 3, Y: 1, Z: 4}
	keys := vecKeys(2.0, v)
	rest := math.Vec3{X: 100}

	for _, b := range []Behaviour{Default, Constant, Linear, Repeat} {
		for _, at := range []float64{-100, 0, 2, 2.5, 1000} {
			assert.Equal(t, v, evalVec(t, keys, at, b, b, rest), "%s at %v", b, at)
		}
	}
}

func TestEvaluateLinearExtrapolation(t *testing.T) {
	keys := vecKeys(
		0.0, math.Vec3{X: 0},
		2.0, math.Vec3{X: 4},
		6.0, math.Vec3{X: 6},
	)

	// Before: slope of the first pair (2 per tick)
	assertVec(t, math.Vec3{X: -2}, evalVec(t, keys, -1, Linear, Linear, math.Vec3{}))
	// After: slope of the last pair (0.5 per tick)
	assertVec(t, math.Vec3{X: 8}, evalVec(t, keys, 10, Linear, Linear, math.Vec3{}))
}

func TestEvaluateLinearZeroSpanHoldsEdge(t *testing.T) {
	keys := vecKeys(0.0, math.Vec3{X: 1}, 0.0, math.Vec3{X: 2}, 5.0, math.Vec3{X: 3}, 5.0, math.Vec3{X: 4})

	assert.Equal(t, math.Vec3{X: 1}, evalVec(t, keys, -3, Linear, Linear, math.Vec3{}))
	assert.Equal(t, math.Vec3{X: 4}, evalVec(t, keys, 8, Linear, Linear, math.Vec3{}))
}

func TestEvaluateRepeatIsPeriodic(t *testing.T) {
	keys := vecKeys(
		1.0, math.Vec3{X: 0, Y: 1},
		3.0, math.Vec3{X: 5, Y: -1},
		5.0, math.Vec3{X: 2, Y: 7},
	)
	span := 4.0

	for _, at := range []float64{1.5, 2, 2.75, 3.5, 4.9} {
		base := evalVec(t, keys, at, Repeat, Repeat, math.Vec3{})
		for n := -3; n <= 3; n++ {
			got := evalVec(t, keys, at+float64(n)*span, Repeat, Repeat, math.Vec3{})
			assertVec(t, base, got)
		}
	}
}

func TestEvaluateRepeatZeroSpanActsConstant(t *testing.T) {
	keys := vecKeys(3.0, math.Vec3{X: 1}, 3.0, math.Vec3{X: 2})

	assert.Equal(t, math.Vec3{X: 1}, evalVec(t, keys, 0, Repeat, Repeat, math.Vec3{}))
	assert.Equal(t, math.Vec3{X: 2}, evalVec(t, keys, 9, Repeat, Repeat, math.Vec3{}))
}

func TestEvaluateScenarioConstantLinear(t *testing.T) {
	v0 := math.Vec3{X: 1, Y: 2, Z: 3}
	v1 := math.Vec3{X: 3, Y: 5, Z: 9}
	keys := vecKeys(0.0, v0, 10.0, v1)

	assert.Equal(t, v0, evalVec(t, keys, -5, Constant, Linear, math.Vec3{}))
	assertVec(t, v0.Lerp(v1, 0.5), evalVec(t, keys, 5, Constant, Linear, math.Vec3{}))
	assertVec(t, v1.Add(v1.Sub(v0).Scale(1)), evalVec(t, keys, 20, Constant, Linear, math.Vec3{}))
}

func TestEvaluateScenarioRepeat(t *testing.T) {
	keys := vecKeys(
		0.0, math.Vec3{X: 0},
		4.0, math.Vec3{X: 8},
		8.0, math.Vec3{X: 2},
	)

	at10 := evalVec(t, keys, 10, Repeat, Repeat, math.Vec3{})
	at2 := evalVec(t, keys, 2, Repeat, Repeat, math.Vec3{})
	assertVec(t, at2, at10)
	assertVec(t, math.Vec3{X: 4}, at2)
}

func TestEvaluateDuplicateTimesPickFirstOfPair(t *testing.T) {
	keys := vecKeys(
		0.0, math.Vec3{X: 0},
		5.0, math.Vec3{X: 1},
		5.0, math.Vec3{X: 2},
		10.0, math.Vec3{X: 3},
	)

	assert.Equal(t, math.Vec3{X: 1}, evalVec(t, keys, 5, Default, Default, math.Vec3{}))
	assertVec(t, math.Vec3{X: 2.5}, evalVec(t, keys, 7.5, Default, Default, math.Vec3{}))
}

func TestEvaluateUnsortedKeysDoNotPanic(t *testing.T) {
	keys := vecKeys(
		0.0, math.Vec3{X: 0},
		8.0, math.Vec3{X: 1},
		3.0, math.Vec3{X: 2},
		10.0, math.Vec3{X: 3},
		-4.0, math.Vec3{X: 4},
	)

	for _, b := range []Behaviour{Default, Constant, Linear, Repeat} {
		for at := -20.0; at <= 20; at += 0.5 {
			assert.NotPanics(t, func() {
				_, err := Evaluate(keys, at, b, b, math.Vec3{}, LerpVec3)
				assert.NoError(t, err)
			})
		}
	}
}

func TestEvaluateQuaternionShortestArc(t *testing.T) {
	axis := math.Vec3{X: 0, Y: 1, Z: 0}
	q0 := math.QuatIdentity()
	// 160 degrees stored in the far hemisphere
	q1 := math.QuatFromAxisAngle(axis, float32(160*gomath.Pi/180)).Neg()
	keys := []QuatKey{{Time: 0, Value: q0}, {Time: 1, Value: q1}}

	for _, alpha := range []float64{0.25, 0.5, 0.75} {
		got, err := Evaluate(keys, alpha, Default, Default, math.QuatIdentity(), SlerpQuat)
		require.NoError(t, err)

		want := math.QuatFromAxisAngle(axis, float32(alpha*160*gomath.Pi/180))
		assert.True(t, got.SameRotation(want, 1e-4), "alpha %v: got %+v want %+v", alpha, got, want)
	}
}

func TestHold(t *testing.T) {
	keys := []MeshKey{{Time: 0, Value: 0}, {Time: 5, Value: 2}, {Time: 12, Value: 1}}

	tests := []struct {
		at   float64
		want uint32
	}{
		{-1, 0},
		{0, 0},
		{4.99, 0},
		{5, 2},
		{7, 2},
		{12, 1},
		{100, 1},
	}
	for _, tt := range tests {
		got, err := Hold(keys, tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at %v", tt.at)
	}
}

func TestHoldErrors(t *testing.T) {
	_, err := Hold[uint32](nil, 1)
	assert.ErrorIs(t, err, ErrEmptyChannel)

	_, err = Hold([]MeshKey{{Time: 0, Value: 1}}, gomath.NaN())
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestKeyAt(t *testing.T) {
	keys := []MeshKey{{Time: 1, Value: 4}}

	k, err := KeyAt(keys, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), k.Value)

	_, err = KeyAt(keys, 1)
	assert.ErrorIs(t, err, ErrKeyIndex)

	_, err = KeyAt[uint32](nil, 0)
	assert.ErrorIs(t, err, ErrEmptyChannel)
}
