package region

import (
	"fmt"
	"io"

	gommap "github.com/go-mmap/mmap"
	expmmap "golang.org/x/exp/mmap"
)

// readerAt is what both ReadAt backends provide.
type readerAt interface {
	io.ReaderAt
	io.Closer
	Len() int
	At(i int) byte
}

// copying is a Region that copies chunks out of a ReaderAt.
type copying struct {
	r readerAt
}

func (c *copying) Len() int {
	if c.r == nil {
		return 0
	}
	return c.r.Len()
}

func (c *copying) At(i int) byte { return c.r.At(i) }

func (c *copying) Slice(start, end int, buf []byte) ([]byte, error) {
	buf = growBuf(buf, end-start)
	if len(buf) == 0 {
		return buf, nil
	}
	n, err := c.r.ReadAt(buf, int64(start))
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return nil, fmt.Errorf("read [%d, %d): %w", start, end, err)
	}
	return buf, nil
}

func (c *copying) Close() error {
	if c.r == nil {
		return nil
	}
	err := c.r.Close()
	c.r = nil
	return err
}

func openGoMmap(path string) (Region, error) {
	empty, err := isEmpty(path)
	if err != nil {
		return nil, err
	}
	if empty {
		return &copying{}, nil
	}
	f, err := gommap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &copying{r: f}, nil
}

func openExpMmap(path string) (Region, error) {
	empty, err := isEmpty(path)
	if err != nil {
		return nil, err
	}
	if empty {
		return &copying{}, nil
	}
	r, err := expmmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &copying{r: r}, nil
}

func isEmpty(path string) (bool, error) {
	f, size, err := openSized(path)
	if err != nil {
		return false, err
	}
	f.Close()
	return size == 0, nil
}
