package core

// Opcode is a single byte value selecting one of the machine's behaviors.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0x00) // nop
	OP_DIFF = Opcode(0x01) // diff
	OP_INTG = Opcode(0x02) // intg
	OP_TENS = Opcode(0x03) // tens
	OP_MERG = Opcode(0x04) // merg
	OP_LOOP = Opcode(0x05) // loop
)

// Valid returns true if the Opcode is a recognized instruction.
func (op Opcode) Valid() bool {
	return op <= OP_LOOP
}

// Message returns the console message dispatched for the Opcode.
// Unrecognized values produce a warning naming the byte in hex;
// they are reported, not refused.
func (op Opcode) Message() string {
	switch op {
	case OP_NOP:
		return f("• Dot point reached")
	case OP_DIFF:
		return f("∂ Outward expansion")
	case OP_INTG:
		return f("∫ Returning inward")
	case OP_TENS:
		return f("⊗ Tensor entanglement")
	case OP_MERG:
		return f("⊕ Harmonious merge")
	case OP_LOOP:
		return f("ϕ Resonant soul loop")
	default:
		return f("⚠ Unknown opcode: 0x%02X", uint8(op))
	}
}
