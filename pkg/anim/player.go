package anim

import (
	gomath "math"
	"time"
)

// Player tracks playback time for one instance of an animation.
// It is not safe for concurrent use; the Animation it reads is.
type Player struct {
	anim       *Animation
	defaultTPS float64
	ticks      float64

	// Speed scales elapsed time. Negative values play backwards.
	Speed float64
	// Loop wraps the playhead into [0, Duration).
	Loop bool
}

// NewPlayer creates a player at tick 0. defaultTicksPerSecond is used when
// the animation does not specify a tick rate.
func NewPlayer(a *Animation, defaultTicksPerSecond float64) *Player {
	if defaultTicksPerSecond <= 0 {
		defaultTicksPerSecond = DefaultTicksPerSecond
	}
	return &Player{
		anim:       a,
		defaultTPS: defaultTicksPerSecond,
		Speed:      1,
	}
}

// Animation returns the animation being played.
func (p *Player) Animation() *Animation {
	return p.anim
}

// Advance moves the playhead by dt of wall time and returns the new tick.
func (p *Player) Advance(dt time.Duration) float64 {
	p.ticks += dt.Seconds() * p.Speed * p.anim.TicksPerSecondOr(p.defaultTPS)
	p.wrap()
	return p.ticks
}

// Seek places the playhead at the given tick.
func (p *Player) Seek(ticks float64) {
	p.ticks = ticks
	p.wrap()
}

// Ticks returns the playhead position.
func (p *Player) Ticks() float64 {
	return p.ticks
}

// Done reports whether a non-looping player has passed either end.
func (p *Player) Done() bool {
	if p.Loop {
		return false
	}
	if p.Speed < 0 {
		return p.ticks <= 0
	}
	return p.ticks >= p.anim.Duration
}

func (p *Player) wrap() {
	d := p.anim.Duration
	if !p.Loop || !(d > 0) {
		return
	}
	p.ticks = gomath.Mod(p.ticks, d)
	if p.ticks < 0 {
		p.ticks += d
	}
}
