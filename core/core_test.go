package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCore_Load(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)

	assert.Equal(SeedProgram(), core.Memory[:len(seedProgram)])
	for n := len(seedProgram); n < MEMORY_SIZE; n++ {
		assert.Equal(uint8(0), core.Memory[n])
	}
	assert.Equal(uint8(0), core.Pc)
	assert.Equal(uint64(0), core.Cycles)
}

func TestCore_Load_Exact(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	program := make([]uint8, MEMORY_SIZE)
	for n := range program {
		program[n] = uint8(OP_LOOP)
	}

	err := core.Load(program)
	assert.NoError(err)
	assert.Equal(uint8(OP_LOOP), core.Memory[MEMORY_SIZE-1])
}

func TestCore_Load_TooLong(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)
	core.Tick()

	err = core.Load(make([]uint8, MEMORY_SIZE+1))
	assert.ErrorIs(err, ErrProgramTooLong)

	// A rejected load leaves the machine untouched.
	assert.Equal(SeedProgram(), core.Memory[:len(seedProgram)])
	assert.Equal(uint8(1), core.Pc)
	assert.Equal(uint64(1), core.Cycles)
}

func TestCore_Reset(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)
	core.Tick()
	core.Tick()

	core.Reset()
	assert.Equal(uint8(0), core.Pc)
	assert.Equal(uint64(0), core.Cycles)
	for n := range core.Memory {
		assert.Equal(uint8(0), core.Memory[n])
	}
}

func TestCore_PcAdvance(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	for _, pc := range []uint8{0, 1, 6, 100, 254} {
		core.Pc = pc
		core.Tick()
		assert.Equal(pc+1, core.Pc)
	}
}

func TestCore_PcWrap(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	core.Pc = MEMORY_SIZE - 1
	core.Tick()
	assert.Equal(uint8(0), core.Pc)
}

func TestCore_Cycles(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	for n := range uint64(1000) {
		assert.Equal(n, core.Cycles)
		core.Tick()
		assert.Equal(n+1, core.Cycles)
	}
}

func TestCore_Fetch(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)

	assert.Equal(OP_DIFF, core.Fetch())
	core.Tick()
	assert.Equal(OP_DIFF, core.Fetch())
	core.Pc = 6
	assert.Equal(OP_NOP, core.Fetch())
}

func TestCore_SeedSequence(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)

	expect := []string{
		"∂ Outward expansion",
		"∂ Outward expansion",
		"⊗ Tensor entanglement",
		"∫ Returning inward",
		"ϕ Resonant soul loop",
		"⊕ Harmonious merge",
		"• Dot point reached",
	}

	// Two full passes over memory: the seed messages, the zero-filled
	// remainder as no-ops, then the identical sequence again.
	for pass := range 2 {
		for n, msg := range expect {
			assert.Equal(msg, core.Tick(), "pass %v offset %v", pass, n)
		}
		for n := len(expect); n < MEMORY_SIZE; n++ {
			assert.Equal("• Dot point reached", core.Tick(), "pass %v offset %v", pass, n)
		}
	}

	assert.Equal(uint64(2*MEMORY_SIZE), core.Cycles)
	assert.Equal(uint8(0), core.Pc)
}

func TestCore_String(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	err := core.Load(SeedProgram())
	assert.NoError(err)

	assert.Contains(core.String(), "pc: 00")
	assert.Contains(core.String(), "op: diff")

	core.Tick()
	assert.Contains(core.String(), "cycles: 1")
}

func TestCore_Defines(t *testing.T) {
	assert := assert.New(t)

	core := NewCore()

	defines := map[string]string{}
	for key, value := range core.Defines() {
		defines[key] = value
	}

	assert.Equal("256", defines["MEMORY_SIZE"])
	assert.Equal("0", defines["OP_NOP"])
	assert.Equal("5", defines["OP_LOOP"])
}
