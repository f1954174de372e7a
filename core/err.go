package core

import (
	"errors"

	"github.com/ezrec/soulcore/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrProgramTooLong = errors.New(f("program too long"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrByteSyntax      = errors.New(f(".byte syntax"))
	ErrByteRange       = errors.New(f(".byte out of range"))
	ErrReptSyntax      = errors.New(f(".rept syntax"))
	ErrReptNesting     = errors.New(f(".rept in .rept prohibited"))
	ErrReptLonely      = errors.New(f(".rept without .endr"))
	ErrReptLonelyEndr  = errors.New(f(".endr without .rept"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
