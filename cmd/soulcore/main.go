// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command soulcore cycles the built-in seed program through the SoulCore
// machine, printing one message per opcode at a half-second rhythm.
//
// The loop does not terminate on its own: stop it with an interrupt or
// termination signal, or bound it with -n for diagnostic runs.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ezrec/soulcore/emulator"
)

func main() {
	var interval time.Duration
	var cycles uint64
	var verbose bool

	flag.DurationVar(&interval, "t", emulator.TICK_INTERVAL, "Pause between cycles")
	flag.Uint64Var(&cycles, "n", 0, "Stop after N cycles, 0 to run forever")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Interval = interval
	emu.MaxCycles = cycles

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = emu.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
