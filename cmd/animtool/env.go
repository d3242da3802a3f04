package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/assetcore/internal/config"
	"github.com/Faultbox/assetcore/internal/logger"
	"github.com/Faultbox/assetcore/pkg/anim"
	"github.com/Faultbox/assetcore/pkg/scene"
	"github.com/Faultbox/assetcore/pkg/scenedoc"
)

// env is the state shared by every subcommand: flags, the effective
// configuration and a logger writing to stderr.
type env struct {
	fs    *flag.FlagSet
	flags *config.Flags
	cfg   *config.Config
	log   *zap.Logger
	out   io.Writer
}

func newEnv(name string, stdout, stderr io.Writer) *env {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return &env{fs: fs, flags: config.RegisterFlags(fs), out: stdout}
}

// parse parses args and loads configuration. Command-specific flags must
// be registered on e.fs before calling it.
func (e *env) parse(args []string, stderr io.Writer) error {
	if err := e.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errUsage
		}
		return err
	}

	cfg, err := config.Load(e.flags)
	if err != nil {
		return err
	}
	e.cfg = cfg

	opts := logger.Options{Level: cfg.Logging.Level, Console: stderr}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	log, err := logger.New(opts)
	if err != nil {
		return err
	}
	e.log = log.Named("animtool")
	return nil
}

func (e *env) sync() {
	if e.log != nil {
		_ = e.log.Sync()
	}
}

func (e *env) loadScene(path string) (*scene.Scene, error) {
	s, err := scenedoc.ParseFile(path)
	if err != nil {
		return nil, err
	}
	e.log.Debug("scene loaded",
		zap.String("path", path),
		zap.Int("nodes", s.NodeCount()),
		zap.Int("meshes", len(s.Meshes)),
		zap.Int("animations", len(s.Animations)))
	return s, nil
}

func findAnimation(s *scene.Scene, name string) (*anim.Animation, error) {
	a := s.FindAnimation(name)
	if a == nil {
		return nil, fmt.Errorf("animation %q not found", name)
	}
	return a, nil
}
