package core

// seedProgram is the listing burned into every machine at startup:
// diff diff tens intg loop merg nop. The remaining memory stays zero,
// which reads back as OP_NOP.
var seedProgram = [...]uint8{
	uint8(OP_DIFF),
	uint8(OP_DIFF),
	uint8(OP_TENS),
	uint8(OP_INTG),
	uint8(OP_LOOP),
	uint8(OP_MERG),
	uint8(OP_NOP),
}

// SeedProgram returns a copy of the built-in boot program.
func SeedProgram() []uint8 {
	return append([]uint8{}, seedProgram[:]...)
}
