// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"time"

	"github.com/ezrec/soulcore/core"
	"github.com/ezrec/soulcore/internal"
)

const (
	TICK_INTERVAL = 500 * time.Millisecond // Pacing between cycles.
)

var _emulator_defines = map[string]string{
	"TICK_MS": fmt.Sprintf("%d", TICK_INTERVAL/time.Millisecond),
}

// Emulator state. Machine + output + pacing.
type Emulator struct {
	Verbose    bool // If set, enables verbose logging.
	*core.Core      // Reference to the machine simulation.

	Output   io.Writer     // Destination for dispatched messages.
	Interval time.Duration // Pause between cycles. Zero disables pacing.

	// MaxCycles stops Run after this many total machine cycles.
	// Zero runs forever.
	MaxCycles uint64
}

// NewEmulator creates a new emulator paced at the standard interval,
// emitting to standard output.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Core:     core.NewCore(),
		Output:   os.Stdout,
		Interval: TICK_INTERVAL,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Core.Defines(),
	)
}

// Reset loads the built-in seed program and zeros the machine counters.
func (emu *Emulator) Reset() (err error) {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	err = emu.Core.Load(core.SeedProgram())

	return
}

// Tick performs a single cycle of the emulator: one fetch-dispatch-advance
// on the machine, and one message line on the output.
func (emu *Emulator) Tick() (err error) {
	if emu.Verbose {
		log.Printf("emulator: %v", emu.Core)
	}

	msg := emu.Core.Tick()

	_, err = fmt.Fprintln(emu.Output, msg)
	if err != nil {
		err = &ErrRuntime{Cycle: emu.Core.Cycles, Err: err}
	}

	return
}

// Run cycles the emulator until the context is cancelled, or until
// MaxCycles (when set) is reached. Cancellation is observed between
// cycles: a context already done when a cycle would begin stops the loop
// before that cycle's message is emitted.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		if emu.MaxCycles != 0 && emu.Core.Cycles >= emu.MaxCycles {
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		err = emu.Tick()
		if err != nil {
			return
		}

		if emu.Interval <= 0 {
			continue
		}

		timer := time.NewTimer(emu.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			err = ctx.Err()
			return
		case <-timer.C:
		}
	}
}
