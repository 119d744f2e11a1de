//go:build windows

package process

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsHandle struct {
	pid  uint32
	proc windows.Handle
}

// Open attaches to the process with the given pid.
func Open(pid int) (Handle, error) {
	proc, err := windows.OpenProcess(
		windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ,
		false,
		uint32(pid),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: pid %d: %v", ErrProcessNotFound, pid, err)
	}
	return &windowsHandle{pid: uint32(pid), proc: proc}, nil
}

// OpenByName attaches to the first process whose executable name matches
// name (case-insensitive).
func OpenByName(name string) (Handle, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot processes: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	for err := windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if strings.EqualFold(windows.UTF16ToString(entry.ExeFile[:]), name) {
			return Open(int(entry.ProcessID))
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProcessNotFound, name)
}

func (h *windowsHandle) ModuleByName(name string) (Module, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(
		windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32,
		h.pid,
	)
	if err != nil {
		return Module{}, fmt.Errorf("snapshot modules: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ModuleEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	for err := windows.Module32First(snapshot, &entry); err == nil; err = windows.Module32Next(snapshot, &entry) {
		if strings.EqualFold(windows.UTF16ToString(entry.Module[:]), name) {
			return Module{
				Name: windows.UTF16ToString(entry.Module[:]),
				Base: uint64(entry.ModBaseAddr),
			}, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
}

func (h *windowsHandle) ReadUint32(addr uint64) (uint32, error) {
	var buf [4]byte
	var read uintptr
	err := windows.ReadProcessMemory(h.proc, uintptr(addr), &buf[0], uintptr(len(buf)), &read)
	if err != nil {
		return 0, fmt.Errorf("%w: address %#x: %v", ErrReadFailed, addr, err)
	}
	if read != uintptr(len(buf)) {
		return 0, fmt.Errorf("%w: address %#x: short read (%d bytes)", ErrReadFailed, addr, read)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (h *windowsHandle) Close() error {
	return windows.CloseHandle(h.proc)
}
