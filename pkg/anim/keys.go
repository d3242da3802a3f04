package anim

import (
	"fmt"

	"github.com/Faultbox/assetcore/pkg/math"
)

// Key is a single time-value sample. Time is in animation ticks.
type Key[T any] struct {
	Time  float64
	Value T
}

// VectorKey specifies a 3D vector (position or scaling) at a point in time.
type VectorKey = Key[math.Vec3]

// QuatKey specifies a rotation at a point in time.
type QuatKey = Key[math.Quat]

// MeshKey binds an anim-mesh variant to a point in time. Value indexes the
// AnimMeshes of every mesh the owning MeshAnim applies to.
type MeshKey = Key[uint32]

// KeyAt returns the i-th key of a channel.
func KeyAt[T any](keys []Key[T], i int) (Key[T], error) {
	if len(keys) == 0 {
		return Key[T]{}, ErrEmptyChannel
	}
	if i < 0 || i >= len(keys) {
		return Key[T]{}, fmt.Errorf("%w: %d of %d", ErrKeyIndex, i, len(keys))
	}
	return keys[i], nil
}

// TimeRange returns the first and last key times. ok is false for an
// empty channel.
func TimeRange[T any](keys []Key[T]) (first, last float64, ok bool) {
	if len(keys) == 0 {
		return 0, 0, false
	}
	return keys[0].Time, keys[len(keys)-1].Time, true
}
