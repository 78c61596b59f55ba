package debuglog

import (
	"io"
)

// RunAndLog runs a cleanup step and reports its error at LevelWarn under
// label. Cleanup failures are never returned to the caller.
func RunAndLog(label string, fn func() error) {
	if err := fn(); err != nil {
		Log(label, LevelWarn, UseGlobal, "%v", err)
	}
}

// CloseWithLog closes c, reporting a failure under name. Nil closers are
// skipped so callers can defer it on optional files.
func CloseWithLog(name string, c io.Closer) {
	if c == nil {
		return
	}
	RunAndLog(name, c.Close)
}
