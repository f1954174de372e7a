// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package core

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// rept represents a repeat block under collection.
type rept struct {
	LineNo int      // Line number of the first repeated line.
	Count  int64    // Number of expansions.
	Lines  []string // Lines of text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for SoulCore listings.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of generated listing lines.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonicMap maps opcode mnemonics.
var mnemonicMap = map[string]Opcode{
	"nop":  OP_NOP,
	"diff": OP_DIFF,
	"intg": OP_INTG,
	"tens": OP_TENS,
	"merg": OP_MERG,
	"loop": OP_LOOP,
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be mnemonics
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int64
	return
}

// parseLine parses a single line into substituted words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentOffset gets the offset of the next generated byte.
func (asm *Assembler) currentOffset() int {
	if len(asm.Line) == 0 {
		return 0
	}

	last := asm.Line[len(asm.Line)-1]

	return last.Offset + len(last.Bytes)
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := slices.Clone(words)

	var bins []uint8

	if words[0] == ".byte" {
		if len(words) < 2 {
			err = ErrByteSyntax
			return
		}
		for _, word := range words[1:] {
			var value int64
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			if value < 0 || value > 0xff {
				err = ErrByteRange
				return
			}
			bins = append(bins, uint8(value))
		}
	} else {
		for _, word := range words {
			op, ok := mnemonicMap[word]
			if !ok {
				err = ErrOpcodeInvalid
				return
			}
			bins = append(bins, uint8(op))
		}
	}

	asm.Line = append(asm.Line, Line{
		LineNo: lineno,
		Offset: asm.currentOffset(),
		Words:  initial_words,
		Bytes:  bins,
	})

	return
}

// Parse parses an input stream into a Program containing the listing.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var rep *rept

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		words := slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

		// .rept COUNT
		if len(words) > 0 && words[0] == ".rept" {
			if rep != nil {
				err = ErrReptNesting
				return
			}
			if len(words) != 2 {
				err = ErrReptSyntax
				return
			}
			count_word := words[1]
			equate, ok := asm.Equate[count_word]
			if ok {
				count_word = equate
			}
			var count int64
			count, err = asm.valueOf(count_word)
			if err != nil {
				return
			}
			if count < 0 {
				err = ErrReptSyntax
				return
			}
			rep = &rept{
				LineNo: lineno + 1,
				Count:  count,
			}
			continue
		}

		if len(words) > 0 && words[0] == ".endr" {
			if rep == nil {
				err = ErrReptLonelyEndr
				return
			}
			for range rep.Count {
				for n, rline := range rep.Lines {
					rlineno := rep.LineNo + n
					var rwords []string
					rwords, err = asm.parseLine(rline, rlineno)
					if err != nil {
						line, lineno = rline, rlineno
						return
					}
					err = asm.parseWords(rwords, rlineno)
					if err != nil {
						line, lineno = rline, rlineno
						return
					}
				}
			}
			rep = nil
			continue
		}

		if rep != nil {
			rep.Lines = append(rep.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if rep != nil {
		err = ErrReptLonely
		return
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}
