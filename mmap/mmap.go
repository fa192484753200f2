package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map is a read-only memory mapping of a file. Data aliases the OS page
// cache directly, so it must never be written to and must not be used after
// Close.
type Map struct {
	Data []byte
}

// Open maps the file at path read-only. A zero-length file yields an empty
// mapping with no backing region, since mapping zero bytes is not allowed.
func Open(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return &Map{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unable to mmap %s: %w", path, err)
	}
	return &Map{Data: data}, nil
}

// Close releases the mapping. Safe to call more than once.
func (m *Map) Close() error {
	if m.Data == nil {
		return nil
	}
	data := m.Data
	m.Data = nil

	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("unable to munmap: %w", err)
	}
	return nil
}
