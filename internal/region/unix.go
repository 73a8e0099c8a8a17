//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const unixSupported = true

func openUnix(path string) (Region, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if size == 0 {
		return &mapped{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	// only a hint; a kernel that refuses it still serves the pages
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	return &mapped{
		data: data,
		unmap: func() error {
			if err := unix.Munmap(data); err != nil {
				return fmt.Errorf("munmap %s: %w", path, err)
			}
			return nil
		},
	}, nil
}
