// Package pipeline runs the parallel scan: a pool of workers pulls chunks
// from a shared splitter, each filling its own table, and the tables are
// merged once every worker is done.
package pipeline

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"xpug.it/stationavg/internal/chunk"
	"xpug.it/stationavg/internal/parse"
	"xpug.it/stationavg/internal/region"
	"xpug.it/stationavg/internal/report"
	"xpug.it/stationavg/internal/table"
)

// DefaultChunkSize is the target chunk length in bytes.
const DefaultChunkSize = 10 * 1024 * 1024

// Config tunes a run. Zero values pick the defaults.
type Config struct {
	// Workers is the number of parsing goroutines, runtime.NumCPU() if 0.
	Workers int

	// ChunkSize is the target chunk length, DefaultChunkSize if 0.
	ChunkSize int

	// TableCapacity is the per-worker table size, table.DefaultCapacity
	// if 0. Must be a power of two.
	TableCapacity int
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.TableCapacity == 0 {
		c.TableCapacity = table.DefaultCapacity
	}
	return c
}

// Stats describes a finished run.
type Stats struct {
	Workers int
	Chunks  int
	Bytes   int
}

// Run aggregates every record of r.
func Run(r region.Region, cfg Config) (*report.Result, Stats, error) {
	cfg = cfg.withDefaults()
	if c := cfg.TableCapacity; c < 2 || c&(c-1) != 0 {
		return nil, Stats{}, fmt.Errorf("table capacity %d is not a power of two", c)
	}
	splitter, err := chunk.NewSplitter(r, cfg.ChunkSize)
	if err != nil {
		return nil, Stats{}, err
	}

	workers := make([]*worker, cfg.Workers)
	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	wg.Add(len(workers))
	for i := range workers {
		w := &worker{table: table.New(cfg.TableCapacity)}
		workers[i] = w
		go func() {
			defer wg.Done()
			if w.err = w.run(r, splitter, &failed); w.err != nil {
				failed.Store(true)
			}
		}()
	}
	wg.Wait()

	stats := Stats{Workers: len(workers), Bytes: r.Len()}
	tables := make([]*table.Table, len(workers))
	var errs []error
	for i, w := range workers {
		if w.err != nil {
			errs = append(errs, w.err)
		}
		tables[i] = w.table
		stats.Chunks += w.chunks
	}
	if err := errors.Join(errs...); err != nil {
		return nil, stats, err
	}

	res, err := report.Merge(tables...)
	if err != nil {
		return nil, stats, err
	}
	return res, stats, nil
}

type worker struct {
	table  *table.Table
	buf    []byte
	chunks int
	err    error
}

// run parses chunks until the splitter runs dry or another worker failed.
// A full table aborts the worker with table.ErrFull.
func (w *worker) run(r region.Region, splitter *chunk.Splitter, failed *atomic.Bool) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if p == table.ErrFull {
				err = fmt.Errorf("worker after %d chunks: %w", w.chunks, table.ErrFull)
				return
			}
			panic(p)
		}
	}()

	for !failed.Load() {
		c, ok := splitter.Next()
		if !ok {
			return nil
		}
		data, err := r.Slice(c.Start, c.End, w.buf)
		if err != nil {
			return fmt.Errorf("chunk [%d, %d): %w", c.Start, c.End, err)
		}
		w.buf = data[:0]
		parse.Into(w.table, data)
		w.chunks++
	}
	return nil
}
