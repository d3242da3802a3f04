// Package config handles animtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Playback    PlaybackConfig    `yaml:"playback"`
	Sampling    SamplingConfig    `yaml:"sampling"`
	PostProcess PostProcessConfig `yaml:"postprocess"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// PlaybackConfig controls how animation time advances.
type PlaybackConfig struct {
	// DefaultTicksPerSecond applies to animations that leave their tick
	// rate unspecified.
	DefaultTicksPerSecond float64 `yaml:"default_ticks_per_second"`
	Loop                  bool    `yaml:"loop"`
	Speed                 float64 `yaml:"speed"`
}

// SamplingConfig controls offline sampling.
type SamplingConfig struct {
	Rate float64 `yaml:"rate"` // samples per second of playback
}

// PostProcessConfig lists the post-processing steps requested from the
// importer, by step or preset name.
type PostProcessConfig struct {
	Steps []string `yaml:"steps"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Playback: PlaybackConfig{
			DefaultTicksPerSecond: 25,
			Loop:                  false,
			Speed:                 1,
		},
		Sampling: SamplingConfig{
			Rate: 10,
		},
		PostProcess: PostProcessConfig{
			Steps: []string{"TargetRealtimeQuality"},
		},
	}
}
