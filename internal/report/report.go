// Package report merges per-worker tables and renders the final result.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"xpug.it/stationavg/internal/table"
)

// ErrKeyMismatch means two accumulators of different stations were about to
// be combined. It indicates a bug, never bad input.
var ErrKeyMismatch = errors.New("merging mismatched entries")

// Combine merges b into a. Both must belong to the same station.
func Combine(a, b table.Entry) (table.Entry, error) {
	if !a.Key.Equal(b.Key) {
		return table.Entry{}, fmt.Errorf("%w: %q != %q", ErrKeyMismatch, a.Key.Name, b.Key.Name)
	}
	a.Acc.Merge(b.Acc)
	return a, nil
}

// Station is one line of the result.
type Station struct {
	Name string
	table.Accumulator
}

// Result holds the merged stations ordered by name, byte by byte.
type Result struct {
	Stations []Station
}

// Merge folds the entries of all tables into one result.
func Merge(tables ...*table.Table) (*Result, error) {
	merged := make(map[string]table.Entry)
	for _, t := range tables {
		if t == nil {
			continue
		}
		if err := mergeEntries(merged, t.Entries()); err != nil {
			return nil, err
		}
	}
	return collect(merged), nil
}

// MergeEntries is Merge over entry lists already taken out of their tables.
func MergeEntries(lists ...[]table.Entry) (*Result, error) {
	merged := make(map[string]table.Entry)
	for _, entries := range lists {
		if err := mergeEntries(merged, entries); err != nil {
			return nil, err
		}
	}
	return collect(merged), nil
}

func mergeEntries(merged map[string]table.Entry, entries []table.Entry) error {
	for _, e := range entries {
		name := string(e.Key.Name)
		prev, ok := merged[name]
		if !ok {
			merged[name] = e
			continue
		}
		combined, err := Combine(prev, e)
		if err != nil {
			return err
		}
		merged[name] = combined
	}
	return nil
}

func collect(merged map[string]table.Entry) *Result {
	names := maps.Keys(merged)
	slices.Sort(names)

	res := &Result{Stations: make([]Station, len(names))}
	for i, name := range names {
		res.Stations[i] = Station{Name: name, Accumulator: merged[name].Acc}
	}
	return res
}

// Get returns the station called name.
func (r *Result) Get(name string) (Station, bool) {
	i, ok := slices.BinarySearchFunc(r.Stations, name, func(s Station, name string) int {
		return strings.Compare(s.Name, name)
	})
	if !ok {
		return Station{}, false
	}
	return r.Stations[i], true
}

// Write renders r as {name=min/mean/max, ...} followed by a newline.
func (r *Result) Write(w io.Writer, mode Rounding) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	var num []byte
	for i, s := range r.Stations {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(s.Name)
		bw.WriteByte('=')
		num = appendTemperature(num[:0], mode.Round(s.Min))
		num = append(num, '/')
		num = appendTemperature(num, mode.Round(s.Mean()))
		num = append(num, '/')
		num = appendTemperature(num, mode.Round(s.Max))
		bw.Write(num)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// Format renders r without the trailing newline.
func (r *Result) Format(mode Rounding) string {
	var b strings.Builder
	r.Write(&b, mode)
	return strings.TrimSuffix(b.String(), "\n")
}

func appendTemperature(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', 1, 64)
}
