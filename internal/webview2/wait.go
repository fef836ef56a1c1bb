package webview2

import (
	"errors"
	"math"
	"syscall"
	"time"
)

// Wait result codes returned by WaitForSingleObject.
const (
	waitObject0   uint32 = 0x00000000
	waitAbandoned uint32 = 0x00000080
	waitTimeout   uint32 = 0x00000102
	waitFailed    uint32 = 0xFFFFFFFF
)

// timeoutMillis converts d to a wait timeout, staying below INFINITE.
func timeoutMillis(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms <= 0:
		return 0
	case ms >= math.MaxUint32:
		return math.MaxUint32 - 1
	default:
		return uint32(ms)
	}
}

// classifyWait maps a wait result to nil on completion or to the matching
// error kind.
func classifyWait(event uint32, err error) error {
	switch event {
	case waitObject0:
		return nil
	case waitAbandoned:
		return ErrElevationAbandoned
	case waitTimeout:
		return ErrElevationTimeout
	case waitFailed:
		code := event
		var errno syscall.Errno
		if errors.As(err, &errno) {
			code = uint32(errno)
		}
		return &WaitFailedError{Code: code, Err: err}
	default:
		return &WaitFailedError{Code: event, Err: err}
	}
}
