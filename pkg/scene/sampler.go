package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/assetcore/pkg/anim"
)

// Sampler evaluates a scene's animations. Channels are sampled
// independently: a channel that fails, or that targets an unknown node or
// morph target, is logged and leaves its node at the rest pose.
//
// A Sampler holds no mutable state and may be shared between goroutines.
type Sampler struct {
	scene      *Scene
	log        *zap.Logger
	defaultTPS float64
}

// NewSampler creates a sampler for s. A nil logger discards diagnostics.
// defaultTicksPerSecond applies to animations without a tick rate; zero
// selects anim.DefaultTicksPerSecond.
func NewSampler(s *Scene, log *zap.Logger, defaultTicksPerSecond float64) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultTicksPerSecond <= 0 {
		defaultTicksPerSecond = anim.DefaultTicksPerSecond
	}
	return &Sampler{scene: s, log: log, defaultTPS: defaultTicksPerSecond}
}

// Pose samples every node channel of a at the given tick.
func (s *Sampler) Pose(a *anim.Animation, ticks float64) Pose {
	pose := s.scene.RestPose()

	for _, ch := range a.Channels {
		if ch == nil {
			continue
		}
		rest, ok := pose[ch.Name]
		if !ok {
			s.log.Debug("channel targets unknown node",
				zap.String("animation", a.Name),
				zap.String("node", ch.Name))
			continue
		}

		tr, err := ch.Evaluate(ticks, rest)
		if err != nil {
			s.log.Warn("sampling channel failed, holding rest pose",
				zap.String("animation", a.Name),
				zap.String("node", ch.Name),
				zap.Float64("ticks", ticks),
				zap.Error(err))
			continue
		}
		pose[ch.Name] = tr
	}

	return pose
}

// PoseAt samples a at a playback time in seconds.
func (s *Sampler) PoseAt(a *anim.Animation, seconds float64) Pose {
	return s.Pose(a, a.TicksAt(seconds, s.defaultTPS))
}

// MorphTargets returns, for every mesh driven by a mesh channel of a, the
// index of its active anim mesh at the given tick. A mesh channel drives
// all meshes sharing its name; when several channels share a name the
// first one is used.
func (s *Sampler) MorphTargets(a *anim.Animation, ticks float64) map[int]uint32 {
	active := make(map[int]uint32)

	for i, mesh := range s.scene.Meshes {
		if mesh == nil {
			continue
		}
		ch := a.FindMeshChannel(mesh.Name)
		if ch == nil {
			continue
		}

		variant, err := ch.ActiveVariant(ticks)
		if err != nil {
			s.log.Warn("sampling mesh channel failed",
				zap.String("animation", a.Name),
				zap.String("mesh", mesh.Name),
				zap.Float64("ticks", ticks),
				zap.Error(err))
			continue
		}
		if int(variant) >= len(mesh.AnimMeshes) {
			s.log.Warn("mesh channel selects a missing anim mesh",
				zap.String("animation", a.Name),
				zap.String("mesh", mesh.Name),
				zap.Uint32("variant", variant),
				zap.Int("anim_meshes", len(mesh.AnimMeshes)))
			continue
		}
		active[i] = variant
	}

	return active
}
