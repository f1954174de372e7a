// Package core implements the SoulCore byte-code machine and its assembler.
//
// The machine consists of a 256-byte memory, an 8-bit program counter that
// wraps modulo the memory size, and a 64-bit cycle counter. Each tick
// fetches the byte at the program counter, maps it to a console message,
// advances the counter, and tallies the cycle. Opcodes carry no operands
// and none of them modifies memory.
//
// The assembler provides a line-based mnemonic language for composing
// opcode listings, supporting equates, raw byte directives, repeat blocks,
// and compile-time expression evaluation.
package core
