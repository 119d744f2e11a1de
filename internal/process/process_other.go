//go:build !linux && !windows

package process

import (
	"fmt"
	"runtime"
)

// The target process only exists on linux and windows; other platforms can
// still build the tool for offline re-rendering but cannot attach.

func Open(pid int) (Handle, error) {
	return nil, fmt.Errorf("attaching is not supported on %s", runtime.GOOS)
}

func OpenByName(name string) (Handle, error) {
	return nil, fmt.Errorf("attaching is not supported on %s", runtime.GOOS)
}
