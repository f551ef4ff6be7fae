package chip8

import (
	"fmt"
	"time"
)

const (
	// DefaultCPUHz is the default instruction rate per spec.md §6.
	DefaultCPUHz = 700

	// timerHz is fixed at 60 Hz by the CHIP-8 architecture; it is not
	// configurable and does not depend on the CPU clock.
	timerHz = 60
)

// LoopConfig configures the pacing of Loop.Run.
type LoopConfig struct {
	CPUHz   int
	Verbose bool
}

// Loop is the single-threaded cooperative scheduler that paces CPU ticks
// against the 60 Hz timer clock, presents the framebuffer when dirty, and
// gates audio on the sound timer. It is the only executor; instruction
// handlers never suspend mid-cycle.
type Loop struct {
	vm       *VM
	video    Video
	audio    Audio
	keyboard Keyboard
	clock    Clock

	cpuPeriod   time.Duration
	timerPeriod time.Duration
	verbose     bool
}

// NewLoop builds a Loop. A nil Clock defaults to the system monotonic
// clock.
func NewLoop(vm *VM, video Video, audio Audio, keyboard Keyboard, clock Clock, cfg LoopConfig) *Loop {
	if cfg.CPUHz <= 0 {
		cfg.CPUHz = DefaultCPUHz
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Loop{
		vm:          vm,
		video:       video,
		audio:       audio,
		keyboard:    keyboard,
		clock:       clock,
		cpuPeriod:   time.Second / time.Duration(cfg.CPUHz),
		timerPeriod: time.Second / time.Duration(timerHz),
		verbose:     cfg.Verbose,
	}
}

// Run drives the loop until a quit control event or an unrecoverable
// execution fault, and returns the sysexits exit code to surface.
func (l *Loop) Run() int {
	last := l.clock.Now()
	var cpuAcc, timerAcc time.Duration

	for {
		input, err := l.keyboard.Poll()
		if err != nil {
			return ExitHostInitFailed
		}
		l.vm.SetKeys(input.Keys)

		switch input.Event {
		case ControlQuit:
			return ExitOK
		case ControlReload:
			l.vm.Reload()
			last = l.clock.Now()
			cpuAcc, timerAcc = 0, 0
			continue
		case ControlDump:
			fmt.Println(l.vm.Dump())
		}

		now := l.clock.Now()
		elapsed := now.Sub(last)
		last = now
		cpuAcc += elapsed
		timerAcc += elapsed

		for cpuAcc >= l.cpuPeriod {
			if err := l.vm.Step(); err != nil {
				if l.verbose {
					fmt.Println(l.vm.Dump())
					fmt.Println(err)
				}
				if f, ok := err.(*Fault); ok {
					return f.ExitCode()
				}
				return ExitExecutionFault
			}
			cpuAcc -= l.cpuPeriod
		}

		for timerAcc >= l.timerPeriod {
			l.vm.TickTimers()
			timerAcc -= l.timerPeriod
		}

		if l.vm.ScreenDirty() {
			if err := l.video.Present(l.vm.Frame()); err != nil {
				return ExitHostInitFailed
			}
			l.vm.ClearDirty()
		}

		l.audio.SetActive(l.vm.SoundTimer() > 0)

		time.Sleep(time.Millisecond)
	}
}
