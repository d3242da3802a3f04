package anim

import (
	"fmt"
	gomath "math"
	"sort"

	"github.com/Faultbox/assetcore/pkg/math"
)

// Interpolator blends two key values. alpha is 0 at a and 1 at b; values
// outside [0, 1] must extrapolate along the same curve.
type Interpolator[T any] func(a, b T, alpha float64) T

// LerpVec3 interpolates vectors linearly.
func LerpVec3(a, b math.Vec3, alpha float64) math.Vec3 {
	return a.Lerp(b, float32(alpha))
}

// SlerpQuat interpolates rotations along the shortest arc.
func SlerpQuat(a, b math.Quat, alpha float64) math.Quat {
	return a.Slerp(b, float32(alpha))
}

// Evaluate samples a keyframed channel at time t (in ticks).
//
// An empty channel yields rest. Times before the first key are resolved
// with pre, times after the last key with post. A time equal to a key's
// time returns that key's value unchanged; a single-key channel returns its
// key for every t. Inside the range the bracketing keys are found by binary
// search and blended with interp.
//
// The keys are expected in chronological order. Out-of-order keys produce
// an unspecified value but never an out-of-bounds access.
func Evaluate[T any](keys []Key[T], t float64, pre, post Behaviour, rest T, interp Interpolator[T]) (T, error) {
	if gomath.IsNaN(t) || gomath.IsInf(t, 0) {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}

	n := len(keys)
	if n == 0 {
		return rest, nil
	}

	first, last := keys[0], keys[n-1]
	if t <= first.Time {
		if t == first.Time || n == 1 {
			return first.Value, nil
		}
		return outside(keys, t, pre, rest, interp, false), nil
	}
	if t >= last.Time {
		if t == last.Time || n == 1 {
			return last.Value, nil
		}
		return outside(keys, t, post, rest, interp, true), nil
	}

	return inside(keys, t, interp), nil
}

// outside resolves a sample before the first key (after == false) or after
// the last key (after == true). keys has at least two entries.
func outside[T any](keys []Key[T], t float64, b Behaviour, rest T, interp Interpolator[T], after bool) T {
	n := len(keys)
	edge := keys[0]
	if after {
		edge = keys[n-1]
	}

	switch b {
	case Constant:
		return edge.Value

	case Linear:
		k0, k1 := keys[0], keys[1]
		if after {
			k0, k1 = keys[n-2], keys[n-1]
		}
		span := k1.Time - k0.Time
		if span == 0 {
			return edge.Value
		}
		return interp(k0.Value, k1.Value, (t-k0.Time)/span)

	case Repeat:
		start := keys[0].Time
		span := keys[n-1].Time - start
		if !(span > 0) {
			return edge.Value
		}
		offset := gomath.Mod(t-start, span)
		if offset < 0 {
			offset += span
		}
		return inside(keys, start+offset, interp)

	default:
		return rest
	}
}

// inside samples between the first and last key without applying any
// boundary behaviour. t outside the range is clamped to the edge pair.
func inside[T any](keys []Key[T], t float64, interp Interpolator[T]) T {
	n := len(keys)
	if n == 1 {
		return keys[0].Value
	}

	// First key at or after t; an exact hit returns the first key with that time
	j := sort.Search(n, func(i int) bool { return keys[i].Time >= t })
	if j < n && keys[j].Time == t {
		return keys[j].Value
	}

	i := j - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	k0, k1 := keys[i], keys[i+1]
	span := k1.Time - k0.Time
	if span == 0 {
		return k0.Value
	}
	return interp(k0.Value, k1.Value, (t-k0.Time)/span)
}

// Hold returns the value of the last key at or before t, or the first key
// when t precedes all keys. No interpolation and no boundary behaviour
// applies. Mesh channels are sampled this way.
func Hold[T any](keys []Key[T], t float64) (T, error) {
	var zero T
	if gomath.IsNaN(t) || gomath.IsInf(t, 0) {
		return zero, fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	if len(keys) == 0 {
		return zero, ErrEmptyChannel
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t }) - 1
	if i < 0 {
		i = 0
	}
	return keys[i].Value, nil
}
