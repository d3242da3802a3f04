package anim

import "github.com/Faultbox/assetcore/pkg/math"

// Transform is a decomposed local transform. It serves both as the rest
// pose handed to evaluation and as the sampled result.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scaling  math.Vec3
}

// IdentityTransform returns the neutral transform.
func IdentityTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scaling:  math.Vec3One(),
	}
}

// Matrix composes the transform: scale, then rotate, then translate.
func (t Transform) Matrix() math.Mat4 {
	return math.FromTRS(t.Position, t.Rotation, t.Scaling)
}

// NodeAnim describes the animation of a single node.
//
// The keys are absolute, not relative to the rest pose, and replace the
// node's transform while they apply. PreState and PostState govern all
// three channels.
type NodeAnim struct {
	// Name of the affected node, unique among the animation's channels.
	Name string

	PositionKeys []VectorKey
	RotationKeys []QuatKey
	ScalingKeys  []VectorKey

	PreState  Behaviour
	PostState Behaviour
}

// Position samples the position channel. rest is used when the channel is
// empty or Default applies.
func (n *NodeAnim) Position(t float64, rest math.Vec3) (math.Vec3, error) {
	return Evaluate(n.PositionKeys, t, n.PreState, n.PostState, rest, LerpVec3)
}

// Rotation samples the rotation channel.
func (n *NodeAnim) Rotation(t float64, rest math.Quat) (math.Quat, error) {
	return Evaluate(n.RotationKeys, t, n.PreState, n.PostState, rest, SlerpQuat)
}

// Scaling samples the scaling channel.
func (n *NodeAnim) Scaling(t float64, rest math.Vec3) (math.Vec3, error) {
	return Evaluate(n.ScalingKeys, t, n.PreState, n.PostState, rest, LerpVec3)
}

// Evaluate samples all three channels at t. Missing channels fall back to
// the matching component of rest. On error rest is returned unchanged.
func (n *NodeAnim) Evaluate(t float64, rest Transform) (Transform, error) {
	pos, err := n.Position(t, rest.Position)
	if err != nil {
		return rest, err
	}
	rot, err := n.Rotation(t, rest.Rotation)
	if err != nil {
		return rest, err
	}
	scl, err := n.Scaling(t, rest.Scaling)
	if err != nil {
		return rest, err
	}
	return Transform{Position: pos, Rotation: rot, Scaling: scl}, nil
}

// HasKeys reports whether any of the three channels carries keys.
func (n *NodeAnim) HasKeys() bool {
	return len(n.PositionKeys) > 0 || len(n.RotationKeys) > 0 || len(n.ScalingKeys) > 0
}
