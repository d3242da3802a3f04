// Package anim models keyframe animation data from an imported scene and
// evaluates it.
//
// All types are read-only after construction. Any number of goroutines
// may sample the same Animation concurrently.
package anim

import (
	"fmt"
)

// DefaultTicksPerSecond is the conventional tick rate for animations that
// do not specify one.
const DefaultTicksPerSecond = 25.0

// Animation is a named set of node and mesh channels.
type Animation struct {
	// Name is often empty for formats that support a single animation.
	Name string

	// Duration in ticks.
	Duration float64

	// TicksPerSecond is 0 if the source file did not specify it.
	TicksPerSecond float64

	Channels     []*NodeAnim
	MeshChannels []*MeshAnim
}

// FindNodeChannel returns the first node channel with the given name,
// or nil.
func (a *Animation) FindNodeChannel(name string) *NodeAnim {
	for _, ch := range a.Channels {
		if ch != nil && ch.Name == name {
			return ch
		}
	}
	return nil
}

// FindMeshChannel returns the first mesh channel with the given name,
// or nil.
func (a *Animation) FindMeshChannel(name string) *MeshAnim {
	for _, ch := range a.MeshChannels {
		if ch != nil && ch.Name == name {
			return ch
		}
	}
	return nil
}

// TicksPerSecondOr returns TicksPerSecond, or def when it is unspecified.
func (a *Animation) TicksPerSecondOr(def float64) float64 {
	if a.TicksPerSecond > 0 {
		return a.TicksPerSecond
	}
	return def
}

// TicksAt converts a playback time in seconds to ticks.
func (a *Animation) TicksAt(seconds, defTicksPerSecond float64) float64 {
	return seconds * a.TicksPerSecondOr(defTicksPerSecond)
}

// DurationSeconds returns the duration in seconds.
func (a *Animation) DurationSeconds(defTicksPerSecond float64) float64 {
	tps := a.TicksPerSecondOr(defTicksPerSecond)
	if tps <= 0 {
		return 0
	}
	return a.Duration / tps
}

// String returns a one-line summary.
func (a *Animation) String() string {
	return fmt.Sprintf("Animation{name: %q, duration: %g, ticks_per_sec: %g, channels: %d, mesh_channels: %d}",
		a.Name, a.Duration, a.TicksPerSecond, len(a.Channels), len(a.MeshChannels))
}
