//go:build linux

package process

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

type linuxHandle struct {
	pid     int
	modules []Module
}

// Open attaches to the process with the given pid and snapshots its module
// list from /proc/<pid>/maps.
func Open(pid int) (Handle, error) {
	h := &linuxHandle{pid: pid}
	if err := h.loadModules(); err != nil {
		return nil, err
	}
	return h, nil
}

// OpenByName attaches to the first process whose comm name matches name.
func OpenByName(name string) (Handle, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(comm)) == name {
			return Open(pid)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProcessNotFound, name)
}

// loadModules parses /proc/<pid>/maps. The lowest mapping of each backing
// file is that module's base address.
func (h *linuxHandle) loadModules() error {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", h.pid))
	if err != nil {
		return fmt.Errorf("%w: pid %d: %v", ErrProcessNotFound, h.pid, err)
	}
	defer f.Close()

	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 || !strings.HasPrefix(fields[5], "/") {
			continue
		}
		name := filepath.Base(fields[5])
		if seen[name] {
			continue
		}
		baseStr, _, ok := strings.Cut(fields[0], "-")
		if !ok {
			continue
		}
		base, err := strconv.ParseUint(baseStr, 16, 64)
		if err != nil {
			continue
		}
		seen[name] = true
		h.modules = append(h.modules, Module{Name: name, Base: base})
	}
	return scanner.Err()
}

func (h *linuxHandle) ModuleByName(name string) (Module, error) {
	for _, m := range h.modules {
		if m.Name == name {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
}

func (h *linuxHandle) ReadUint32(addr uint64) (uint32, error) {
	var buf [4]byte
	local := []unix.Iovec{{Base: &buf[0], Len: uint64(len(buf))}}
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}

	n, err := unix.ProcessVMReadv(h.pid, local, remote, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: address %#x: %v", ErrReadFailed, addr, err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("%w: address %#x: short read (%d bytes)", ErrReadFailed, addr, n)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (h *linuxHandle) Close() error {
	return nil
}
