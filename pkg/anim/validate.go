package anim

import (
	"errors"
	"fmt"
	gomath "math"
)

// Validate checks an animation against the conventions importers are
// expected to follow. Sampling never requires a validated animation; this
// is for tooling and for rejecting assets up front.
//
// Every problem found is reported, joined with errors.Join.
func Validate(a *Animation) error {
	var errs []error

	if gomath.IsNaN(a.Duration) || gomath.IsInf(a.Duration, 0) || a.Duration < 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidDuration, a.Duration))
	}

	seen := make(map[string]bool, len(a.Channels))
	for i, ch := range a.Channels {
		if ch == nil {
			errs = append(errs, fmt.Errorf("node channel %d: %w", i, ErrNilChannel))
			continue
		}
		if seen[ch.Name] {
			errs = append(errs, fmt.Errorf("node channel %q: %w", ch.Name, ErrDuplicateChannel))
		}
		seen[ch.Name] = true

		if err := checkKeys(ch.PositionKeys); err != nil {
			errs = append(errs, fmt.Errorf("node channel %q position keys: %w", ch.Name, err))
		}
		if err := checkKeys(ch.RotationKeys); err != nil {
			errs = append(errs, fmt.Errorf("node channel %q rotation keys: %w", ch.Name, err))
		}
		if err := checkKeys(ch.ScalingKeys); err != nil {
			errs = append(errs, fmt.Errorf("node channel %q scaling keys: %w", ch.Name, err))
		}

		// Position keys imply at least one rotation and one scaling key, and so on
		if ch.HasKeys() && (len(ch.PositionKeys) == 0 || len(ch.RotationKeys) == 0 || len(ch.ScalingKeys) == 0) {
			errs = append(errs, fmt.Errorf("node channel %q: %w (position %d, rotation %d, scaling %d)",
				ch.Name, ErrIncompleteChannel, len(ch.PositionKeys), len(ch.RotationKeys), len(ch.ScalingKeys)))
		}
	}

	for i, ch := range a.MeshChannels {
		if ch == nil {
			errs = append(errs, fmt.Errorf("mesh channel %d: %w", i, ErrNilChannel))
			continue
		}
		if ch.Name == "" {
			errs = append(errs, fmt.Errorf("mesh channel %d: %w", i, ErrEmptyMeshName))
		}
		if len(ch.Keys) == 0 {
			errs = append(errs, fmt.Errorf("mesh channel %q: %w", ch.Name, ErrEmptyChannel))
			continue
		}
		if err := checkKeys(ch.Keys); err != nil {
			errs = append(errs, fmt.Errorf("mesh channel %q keys: %w", ch.Name, err))
		}
	}

	return errors.Join(errs...)
}

// checkKeys reports the first key that is non-finite, out of order or
// shares its time with the previous key.
func checkKeys[T any](keys []Key[T]) error {
	for i, k := range keys {
		if gomath.IsNaN(k.Time) || gomath.IsInf(k.Time, 0) {
			return fmt.Errorf("key %d: %w: %v", i, ErrInvalidTime, k.Time)
		}
		if i == 0 {
			continue
		}
		prev := keys[i-1].Time
		if k.Time < prev {
			return fmt.Errorf("key %d: %w (%v after %v)", i, ErrUnsortedKeys, k.Time, prev)
		}
		if k.Time == prev {
			return fmt.Errorf("key %d: %w (%v)", i, ErrDuplicateKeyTime, k.Time)
		}
	}
	return nil
}
