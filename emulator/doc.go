// Package emulator runs the paced SoulCore interpreter loop.
//
// The emulator wraps a core.Core with an output writer and a tick
// interval. Each cycle dispatches one message line; the loop runs until
// its context is cancelled, observing cancellation between cycles so a
// stopped loop never emits a partial iteration.
package emulator
