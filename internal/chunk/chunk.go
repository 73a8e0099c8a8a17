// Package chunk splits the input into line-aligned byte ranges that workers
// can process independently.
package chunk

import (
	"errors"
	"fmt"
	"sync"
)

// ErrChunkSize is returned for a non-positive target size.
var ErrChunkSize = errors.New("chunk size must be positive")

// Source is the part of region.Region the splitter needs.
type Source interface {
	Len() int
	At(i int) byte
}

// Chunk is the byte range [Start, End).
type Chunk struct {
	Start, End int
}

// Len returns End - Start.
func (c Chunk) Len() int { return c.End - c.Start }

// Splitter hands out chunks one at a time. Next may be called from many
// goroutines; each chunk is handed out exactly once.
type Splitter struct {
	src  Source
	size int

	mu     sync.Mutex
	cursor int
}

// NewSplitter returns a splitter over src targeting chunks of size bytes.
func NewSplitter(src Source, size int) (*Splitter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, size)
	}
	return &Splitter{src: src, size: size}, nil
}

// Next returns the next chunk, or false once the input is exhausted.
func (s *Splitter) Next() (Chunk, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.cursor
	if start >= s.src.Len() {
		return Chunk{}, false
	}
	end := boundary(s.src, start, s.size)
	s.cursor = end
	return Chunk{Start: start, End: end}, true
}

// All drains the splitter.
func (s *Splitter) All() []Chunk {
	var chunks []Chunk
	for {
		c, ok := s.Next()
		if !ok {
			return chunks
		}
		chunks = append(chunks, c)
	}
}

// boundary returns the end of the chunk starting at start: just past the
// last newline within size bytes, or past the first newline after that when
// a single line is longer than size.
func boundary(src Source, start, size int) int {
	n := src.Len()
	end := start + size
	if end >= n || end < start {
		return n
	}

	for i := end - 1; i >= start; i-- {
		if src.At(i) == '\n' {
			return i + 1
		}
	}
	for i := end; i < n; i++ {
		if src.At(i) == '\n' {
			return i + 1
		}
	}
	return n
}
