package region

import (
	"fmt"

	mmap "github.com/edsrzf/mmap-go"
)

func openMmap(path string) (Region, error) {
	f, size, err := openSized(path)
	if err != nil {
		return nil, err
	}
	// the mapping outlives the descriptor
	defer f.Close()

	if size == 0 {
		return &mapped{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &mapped{data: data, unmap: data.Unmap}, nil
}
