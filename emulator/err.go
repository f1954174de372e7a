package emulator

import (
	"github.com/ezrec/soulcore/translate"
)

var f = translate.From

// ErrRuntime indicates the cycle at which emission failed.
type ErrRuntime struct {
	Cycle uint64
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("cycle %d %v", err.Cycle, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
