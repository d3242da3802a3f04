package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/assetcore/internal/config"
	"github.com/Faultbox/assetcore/pkg/anim"
	vmath "github.com/Faultbox/assetcore/pkg/math"
	"github.com/Faultbox/assetcore/pkg/postprocess"
	"github.com/Faultbox/assetcore/pkg/scene"
)

// maxSamples bounds the default sample count for very long animations.
const maxSamples = 100000

func cmdInfo(args []string, stdout, stderr io.Writer) error {
	e := newEnv("info", stdout, stderr)
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	if e.fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Usage: animtool info <scene.yaml>")
		return errUsage
	}

	s, err := e.loadScene(e.fs.Arg(0))
	if err != nil {
		return err
	}

	out := e.out
	fmt.Fprintf(out, "Scene:      %s\n", e.fs.Arg(0))
	fmt.Fprintf(out, "Nodes:      %d\n", s.NodeCount())
	fmt.Fprintf(out, "Meshes:     %d\n", len(s.Meshes))
	fmt.Fprintf(out, "Materials:  %d\n", len(s.Materials))
	fmt.Fprintf(out, "Animations: %d\n", len(s.Animations))
	fmt.Fprintf(out, "Steps:      %s\n", s.Flags)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Hierarchy:")
	depth := make(map[*scene.Node]int)
	s.Walk(func(n, parent *scene.Node) bool {
		if parent != nil {
			depth[n] = depth[parent] + 1
		}
		fmt.Fprintf(out, "  %s%s", strings.Repeat("  ", depth[n]), n.Name)
		if len(n.Meshes) > 0 {
			fmt.Fprintf(out, "  meshes=%v", n.Meshes)
		}
		fmt.Fprintln(out)
		return true
	})

	if len(s.Meshes) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Meshes:")
		for i, m := range s.Meshes {
			fmt.Fprintf(out, "  [%d] %-16s vertices=%-6d morph targets=%d", i, m.Name, len(m.Vertices), len(m.AnimMeshes))
			if m.MaterialIndex < len(s.Materials) {
				fmt.Fprintf(out, "  material=%s", s.Materials[m.MaterialIndex].Name())
			}
			fmt.Fprintln(out)
		}
	}

	if len(s.Animations) > 0 {
		tps := e.cfg.Playback.DefaultTicksPerSecond
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Animations:")
		for _, a := range s.Animations {
			rate := fmt.Sprintf("%g ticks/s", a.TicksPerSecond)
			if a.TicksPerSecond <= 0 {
				rate = fmt.Sprintf("%g ticks/s (default)", tps)
			}
			fmt.Fprintf(out, "  %-16s %g ticks  %s  %.3fs  channels=%d  mesh channels=%d\n",
				a.Name, a.Duration, rate, a.DurationSeconds(tps), len(a.Channels), len(a.MeshChannels))
		}
	}

	return nil
}

func cmdSample(args []string, stdout, stderr io.Writer) error {
	e := newEnv("sample", stdout, stderr)
	count := e.fs.Int("n", 0, "Number of samples (0 = one pass over the animation)")
	world := e.fs.Bool("world", false, "Print world-space translations instead of local transforms")
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	if e.fs.NArg() < 2 {
		fmt.Fprintln(stderr, "Usage: animtool sample [options] <scene.yaml> <animation> [node...]")
		return errUsage
	}

	s, err := e.loadScene(e.fs.Arg(0))
	if err != nil {
		return err
	}
	a, err := findAnimation(s, e.fs.Arg(1))
	if err != nil {
		return err
	}

	nodes := e.fs.Args()[2:]
	if len(nodes) == 0 {
		nodes = animatedNodes(s, a)
	}
	for _, name := range nodes {
		if s.FindNode(name) == nil {
			return fmt.Errorf("node %q not found", name)
		}
	}

	sampler := scene.NewSampler(s, e.log, e.cfg.Playback.DefaultTicksPerSecond)
	p := newPlayer(a, e.cfg)
	n := sampleCount(a, e.cfg, *count)
	step := sampleStep(e.cfg)

	e.log.Debug("sampling",
		zap.String("animation", a.Name),
		zap.Int("samples", n),
		zap.Duration("step", step))

	for i := 0; i < n; i++ {
		ticks := p.Ticks()
		pose := sampler.Pose(a, ticks)
		fmt.Fprintf(e.out, "t=%.3fs ticks=%.3f\n", float64(i)*step.Seconds(), ticks)

		if *world {
			ws := s.WorldTransforms(pose)
			for _, name := range nodes {
				fmt.Fprintf(e.out, "  %-16s world %s\n", name, fmtVec3(ws[name].Translation()))
			}
		} else {
			for _, name := range nodes {
				tr := pose[name]
				fmt.Fprintf(e.out, "  %-16s pos %s  rot %s  scl %s\n",
					name, fmtVec3(tr.Position), fmtQuat(tr.Rotation), fmtVec3(tr.Scaling))
			}
		}

		p.Advance(step)
	}

	return nil
}

func cmdMorph(args []string, stdout, stderr io.Writer) error {
	e := newEnv("morph", stdout, stderr)
	count := e.fs.Int("n", 0, "Number of samples (0 = one pass over the animation)")
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	if e.fs.NArg() < 2 {
		fmt.Fprintln(stderr, "Usage: animtool morph [options] <scene.yaml> <animation>")
		return errUsage
	}

	s, err := e.loadScene(e.fs.Arg(0))
	if err != nil {
		return err
	}
	a, err := findAnimation(s, e.fs.Arg(1))
	if err != nil {
		return err
	}

	sampler := scene.NewSampler(s, e.log, e.cfg.Playback.DefaultTicksPerSecond)
	p := newPlayer(a, e.cfg)
	n := sampleCount(a, e.cfg, *count)
	step := sampleStep(e.cfg)

	for i := 0; i < n; i++ {
		ticks := p.Ticks()
		active := sampler.MorphTargets(a, ticks)
		fmt.Fprintf(e.out, "t=%.3fs ticks=%.3f\n", float64(i)*step.Seconds(), ticks)

		if len(active) == 0 {
			fmt.Fprintln(e.out, "  (no morph targets)")
		}
		indices := make([]int, 0, len(active))
		for idx := range active {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		for _, idx := range indices {
			mesh := s.Meshes[idx]
			variant := active[idx]
			fmt.Fprintf(e.out, "  [%d] %-16s -> %s (%d)\n", idx, mesh.Name, mesh.AnimMeshes[variant].Name, variant)
		}

		p.Advance(step)
	}

	return nil
}

func cmdSteps(args []string, stdout, stderr io.Writer) error {
	e := newEnv("steps", stdout, stderr)
	all := e.fs.Bool("all", false, "List every known step")
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	var steps postprocess.Step
	if *all {
		steps = postprocess.All()
	} else {
		names := e.fs.Args()
		if len(names) == 0 {
			names = e.cfg.PostProcess.Steps
		}
		parsed, err := postprocess.Parse(names)
		if err != nil {
			return err
		}
		if err := parsed.Validate(); err != nil {
			return err
		}
		steps = parsed
	}

	fmt.Fprintf(e.out, "Steps: 0x%08x\n", uint32(steps))
	for _, st := range steps.List() {
		fmt.Fprintf(e.out, "  %-26s 0x%08x  %s\n", st, uint32(st), postprocess.Describe(st))
	}
	return nil
}

func cmdValidate(args []string, stdout, stderr io.Writer) error {
	e := newEnv("validate", stdout, stderr)
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	if e.fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Usage: animtool validate <scene.yaml>")
		return errUsage
	}

	s, err := e.loadScene(e.fs.Arg(0))
	if err != nil {
		return err
	}

	meshNames := make(map[string]bool)
	for _, m := range s.Meshes {
		meshNames[m.Name] = true
	}

	invalid := 0
	for _, a := range s.Animations {
		verr := anim.Validate(a)
		if verr != nil {
			invalid++
			fmt.Fprintf(e.out, "FAIL %s\n", a.Name)
			for _, line := range strings.Split(verr.Error(), "\n") {
				fmt.Fprintf(e.out, "  %s\n", line)
			}
			e.log.Warn("invalid animation", zap.String("animation", a.Name), zap.Error(verr))
		} else {
			fmt.Fprintf(e.out, "OK   %s\n", a.Name)
		}

		for _, ch := range a.Channels {
			if ch != nil && s.FindNode(ch.Name) == nil {
				fmt.Fprintf(e.out, "  warning: channel targets unknown node %q\n", ch.Name)
			}
		}
		for _, mc := range a.MeshChannels {
			if mc != nil && !meshNames[mc.Name] {
				fmt.Fprintf(e.out, "  warning: mesh channel targets unknown mesh %q\n", mc.Name)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d animations invalid", invalid, len(s.Animations))
	}
	return nil
}

func cmdConfig(args []string, stdout, stderr io.Writer) error {
	e := newEnv("config", stdout, stderr)
	path := e.fs.String("o", "", "Write the configuration to this path instead of stdout")
	if err := e.parse(args, stderr); err != nil {
		return err
	}
	defer e.sync()

	if *path != "" {
		if err := e.cfg.SaveTo(*path); err != nil {
			return err
		}
		fmt.Fprintf(e.out, "Wrote %s\n", *path)
		return nil
	}

	data, err := e.cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = e.out.Write(data)
	return err
}

// animatedNodes lists the scene nodes targeted by a's channels, in
// channel order.
func animatedNodes(s *scene.Scene, a *anim.Animation) []string {
	var names []string
	seen := make(map[string]bool)
	for _, ch := range a.Channels {
		if ch == nil || seen[ch.Name] || s.FindNode(ch.Name) == nil {
			continue
		}
		seen[ch.Name] = true
		names = append(names, ch.Name)
	}
	return names
}

func newPlayer(a *anim.Animation, cfg *config.Config) *anim.Player {
	p := anim.NewPlayer(a, cfg.Playback.DefaultTicksPerSecond)
	p.Loop = cfg.Playback.Loop
	p.Speed = cfg.Playback.Speed
	if p.Speed < 0 {
		p.Seek(a.Duration)
	}
	return p
}

func sampleStep(cfg *config.Config) time.Duration {
	return time.Duration(float64(time.Second) / cfg.Sampling.Rate)
}

// sampleCount returns override when positive, otherwise enough samples
// to cover one pass including both ends.
func sampleCount(a *anim.Animation, cfg *config.Config, override int) int {
	if override > 0 {
		return override
	}
	seconds := a.DurationSeconds(cfg.Playback.DefaultTicksPerSecond) / math.Abs(cfg.Playback.Speed)
	samples := math.Floor(seconds*cfg.Sampling.Rate+1e-9) + 1
	switch {
	case !(samples >= 1):
		return 1
	case samples > maxSamples:
		return maxSamples
	}
	return int(samples)
}

func fmtVec3(v vmath.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func fmtQuat(q vmath.Quat) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", q.X, q.Y, q.Z, q.W)
}
