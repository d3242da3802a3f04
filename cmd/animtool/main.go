// animtool inspects and samples scene animations described in YAML scene
// documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(command string, args []string, stdout, stderr io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(args, stdout, stderr)
	case "sample":
		return cmdSample(args, stdout, stderr)
	case "morph":
		return cmdMorph(args, stdout, stderr)
	case "steps":
		return cmdSteps(args, stdout, stderr)
	case "validate", "check":
		return cmdValidate(args, stdout, stderr)
	case "config":
		return cmdConfig(args, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `animtool - scene animation inspection utility

Usage:
  animtool <command> [options]

Commands:
  info <scene.yaml>                        Show nodes, meshes, materials and animations
  sample <scene.yaml> <animation> [node..] Sample node transforms over playback
  morph <scene.yaml> <animation>           Show active morph targets over playback
  steps [name...]                          Show post-processing steps and presets
  validate <scene.yaml>                    Check animations for malformed channels
  config                                   Print the effective configuration

Common options:
  -config <path>  Config file (default ./animtool.yaml, then user config dir)
  -debug          Enable debug logging
  -tps <n>        Ticks per second for animations without one
  -rate <n>       Samples per second
  -speed <n>      Playback speed factor (negative plays backwards)
  -loop           Wrap playback at the animation's duration
  -steps <list>   Comma-separated post-processing steps

Examples:
  animtool info robot.yaml
  animtool sample -rate 30 robot.yaml wave Arm Hand
  animtool sample -world -n 5 robot.yaml wave
  animtool steps TargetRealtimeQuality FlipUVs
  animtool validate robot.yaml`)
}
