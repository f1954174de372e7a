package core

// Line represents an assembled line of source with its generated bytes.
type Line struct {
	LineNo int      // Line number in the source listing.
	Offset int      // Offset of the first generated byte.
	Words  []string // Source words, after substitution.
	Bytes  []uint8  // Generated opcode bytes.
}

// Program is an assembled listing of opcode bytes.
type Program struct {
	Lines []Line
}

// Debug returns the listing line covering a memory offset, or nil if no
// line generated a byte there.
func (prog *Program) Debug(offset int) (line *Line) {
	for n := range prog.Lines {
		ln := &prog.Lines[n]
		if offset >= ln.Offset && offset < ln.Offset+len(ln.Bytes) {
			line = ln
			break
		}
	}

	return
}

// Binary flattens the listing into loadable bytes.
func (prog *Program) Binary() (bins []uint8) {
	for _, line := range prog.Lines {
		bins = append(bins, line.Bytes...)
	}

	return
}
