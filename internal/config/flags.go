package config

import (
	"flag"
	"strings"
)

// Flags holds the configuration overrides registered on a flag set.
type Flags struct {
	fs *flag.FlagSet

	config string
	debug  bool
	tps    float64
	loop   bool
	speed  float64
	rate   float64
	steps  string
}

// RegisterFlags adds the shared configuration flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.config, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.Float64Var(&f.tps, "tps", 0, "Ticks per second for animations that do not specify one")
	fs.BoolVar(&f.loop, "loop", false, "Wrap playback time at the animation's duration")
	fs.Float64Var(&f.speed, "speed", 0, "Playback speed factor")
	fs.Float64Var(&f.rate, "rate", 0, "Samples per second")
	fs.StringVar(&f.steps, "steps", "", "Comma-separated post-processing steps or presets")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.config
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.tps > 0 {
		cfg.Playback.DefaultTicksPerSecond = f.tps
	}
	if f.isSet("loop") {
		cfg.Playback.Loop = f.loop
	}
	if f.speed != 0 {
		cfg.Playback.Speed = f.speed
	}
	if f.rate > 0 {
		cfg.Sampling.Rate = f.rate
	}
	if f.steps != "" {
		cfg.PostProcess.Steps = splitList(f.steps)
	}
}

func (f *Flags) isSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
