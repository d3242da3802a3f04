package anim

import "errors"

// Evaluation and validation errors.
var (
	ErrInvalidTime       = errors.New("invalid sample time")
	ErrEmptyChannel      = errors.New("channel has no keys")
	ErrKeyIndex          = errors.New("key index out of range")
	ErrUnsortedKeys      = errors.New("keys are not in chronological order")
	ErrDuplicateKeyTime  = errors.New("duplicate key time")
	ErrDuplicateChannel  = errors.New("duplicate node channel name")
	ErrIncompleteChannel = errors.New("node channel is missing position, rotation or scaling keys")
	ErrEmptyMeshName     = errors.New("mesh channel has an empty name")
	ErrNilChannel        = errors.New("nil channel")
	ErrInvalidDuration   = errors.New("invalid animation duration")
	ErrUnknownBehaviour  = errors.New("unknown boundary behaviour")
)
