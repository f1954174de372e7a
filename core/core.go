package core

import (
	"fmt"
	"iter"
	"maps"
)

const (
	MEMORY_SIZE = 256 // Bytes of machine memory.
)

var _core_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"OP_NOP":      fmt.Sprintf("%d", OP_NOP),
	"OP_DIFF":     fmt.Sprintf("%d", OP_DIFF),
	"OP_INTG":     fmt.Sprintf("%d", OP_INTG),
	"OP_TENS":     fmt.Sprintf("%d", OP_TENS),
	"OP_MERG":     fmt.Sprintf("%d", OP_MERG),
	"OP_LOOP":     fmt.Sprintf("%d", OP_LOOP),
}

// Core is the simulation context for the SoulCore machine.
//
// Memory is written only by Load and Reset, before cycling begins; no
// opcode mutates it. The program counter is a uint8, so the advance wraps
// modulo MEMORY_SIZE by construction and is always a valid memory index.
type Core struct {
	Memory [MEMORY_SIZE]uint8 // Machine memory.
	Pc     uint8              // Program counter.
	Cycles uint64             // Completed fetch-dispatch-advance cycles.
}

// NewCore creates a new machine with zero-filled memory.
func NewCore() (core *Core) {
	core = &Core{}

	return
}

// Defines for the machine
func (core *Core) Defines() iter.Seq2[string, string] {
	return maps.All(_core_defines)
}

// Reset clears the memory and zeros the program and cycle counters.
func (core *Core) Reset() {
	clear(core.Memory[:])
	core.Pc = 0
	core.Cycles = 0
}

// Load resets the machine and copies the program into the start of
// memory. A program longer than the memory is rejected, and the machine
// state is left untouched.
func (core *Core) Load(program []uint8) (err error) {
	if len(program) > MEMORY_SIZE {
		err = ErrProgramTooLong
		return
	}

	core.Reset()
	copy(core.Memory[:], program)

	return
}

// Fetch returns the opcode at the program counter.
func (core *Core) Fetch() Opcode {
	return Opcode(core.Memory[core.Pc])
}

// Tick performs a single fetch-dispatch-advance cycle and returns the
// dispatched message.
func (core *Core) Tick() (msg string) {
	msg = core.Fetch().Message()
	core.Pc += 1
	core.Cycles += 1

	return
}

// String returns the current machine state as a string.
func (core *Core) String() (text string) {
	text = fmt.Sprintf("pc: %02X op: %v cycles: %v", core.Pc, core.Fetch(), core.Cycles)

	return
}
