// Package player schedules automatic stepping of an engine.
//
// The engine treats speed as an opaque hint; the Player is the scheduler that
// consumes it, converting speed × base rate × elapsed wall time into a whole
// number of steps per tick and carrying the fractional remainder forward.
package player

import "time"

// DefaultBaseRate is the number of steps per second at speed 1.0.
const DefaultBaseRate = 60.0

// Driver is the part of the engine the player needs.
type Driver interface {
	Step() bool
	Speed() float64
	IsFinished() bool
}

type Status int

const (
	Paused Status = iota
	Running
	Completed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	default:
		return "Paused"
	}
}

type Player struct {
	driver   Driver
	baseRate float64
	paused   bool
	carry    float64
	maxBurst int
}

// New returns a paused player. A non-positive baseRate selects
// DefaultBaseRate.
func New(d Driver, baseRate float64) *Player {
	if baseRate <= 0 {
		baseRate = DefaultBaseRate
	}
	return &Player{
		driver:   d,
		baseRate: baseRate,
		paused:   true,
		maxBurst: 10_000,
	}
}

func (p *Player) Paused() bool { return p.paused }

func (p *Player) Pause() {
	p.paused = true
	p.carry = 0
}

func (p *Player) Resume() { p.paused = false }

func (p *Player) Toggle() {
	if p.paused {
		p.Resume()
	} else {
		p.Pause()
	}
}

// StepOnce advances a single step, only while paused.
func (p *Player) StepOnce() bool {
	if !p.paused {
		return false
	}
	return p.driver.Step()
}

// Tick advances the driver by the number of steps owed for dt and returns how
// many steps did work. Nothing happens while paused or after completion.
func (p *Player) Tick(dt time.Duration) int {
	if p.paused || p.driver.IsFinished() || dt <= 0 {
		return 0
	}

	p.carry += p.driver.Speed() * p.baseRate * dt.Seconds()
	owed := int(p.carry)
	p.carry -= float64(owed)
	owed = min(owed, p.maxBurst)

	done := 0
	for range owed {
		if !p.driver.Step() {
			p.carry = 0
			break
		}
		done++
	}
	return done
}

func (p *Player) Status() Status {
	switch {
	case p.driver.IsFinished():
		return Completed
	case p.paused:
		return Paused
	default:
		return Running
	}
}
