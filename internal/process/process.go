// Package process provides read-only access to a running target process:
// module base resolution and single-value memory reads. It is the memory
// source for the build-number stamp in the output metadata.
package process

import "errors"

var (
	// ErrModuleNotFound is returned when no loaded module matches the
	// requested name.
	ErrModuleNotFound = errors.New("module not found")

	// ErrReadFailed is returned when a memory read at an invalid or
	// unmapped address fails.
	ErrReadFailed = errors.New("memory read failed")

	// ErrProcessNotOpen is returned when an operation requires an attached
	// process and none is.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrProcessNotFound is returned when no running process matches the
	// requested name or pid.
	ErrProcessNotFound = errors.New("process not found")
)

// Module is a loaded code unit inside the target process.
type Module struct {
	Name string
	Base uint64
}

// Handle is an attached target process.
type Handle interface {
	// ModuleByName resolves a loaded module by file name (e.g.
	// "libclient.so"). Returns ErrModuleNotFound if absent.
	ModuleByName(name string) (Module, error)

	// ReadUint32 reads a 4-byte little-endian unsigned integer at addr.
	ReadUint32(addr uint64) (uint32, error)

	Close() error
}

// Detached returns a Handle bound to no process. Every lookup and read
// fails with ErrProcessNotOpen; used by offline re-rendering, where the
// build number degrades to zero.
func Detached() Handle {
	return detached{}
}

type detached struct{}

func (detached) ModuleByName(string) (Module, error) { return Module{}, ErrProcessNotOpen }
func (detached) ReadUint32(uint64) (uint32, error)   { return 0, ErrProcessNotOpen }
func (detached) Close() error                        { return nil }
