// Package table implements the per-worker aggregation table: a fixed
// capacity open addressing hash map from station name bytes to running
// min/max/sum/count.
package table

import (
	"bytes"
	"errors"
	"fmt"
)

// DefaultCapacity is far above the ~10,000 distinct station names seen in
// real data, keeping probe sequences short.
const DefaultCapacity = 1 << 17

// ErrFull is the panic value raised when a new key arrives at a table with
// a single free slot left. That last empty slot is what ends every probe
// sequence, so a table holds at most Cap()-1 keys.
var ErrFull = errors.New("aggregation table is full")

// Key is a station name plus the hash computed while it was scanned.
type Key struct {
	Name []byte
	Hash uint32
}

// Equal reports whether both keys hold the same bytes.
func (k Key) Equal(o Key) bool {
	return bytes.Equal(k.Name, o.Name)
}

func (k Key) String() string {
	return string(k.Name)
}

// Accumulator holds the running aggregate of one station.
type Accumulator struct {
	Min, Max, Sum float64
	Count         int64
}

// Add folds a single observation in.
func (a *Accumulator) Add(v float64) {
	a.Min = min(a.Min, v)
	a.Max = max(a.Max, v)
	a.Sum += v
	a.Count++
}

// Merge folds another accumulator in.
func (a *Accumulator) Merge(o Accumulator) {
	a.Min = min(a.Min, o.Min)
	a.Max = max(a.Max, o.Max)
	a.Sum += o.Sum
	a.Count += o.Count
}

// Mean returns Sum/Count.
func (a Accumulator) Mean() float64 {
	return a.Sum / float64(a.Count)
}

// Entry is one occupied slot.
type Entry struct {
	Key Key
	Acc Accumulator
}

// Table is owned by a single writer. Slots are never deleted and a key
// keeps its slot for the table's lifetime.
type Table struct {
	mask  uint32
	len   int
	keys  [][]byte
	hash  []uint32
	accs  []Accumulator
	arena []byte
}

// New allocates a table with the given capacity, which must be a power of
// two.
func New(capacity int) *Table {
	if capacity <= 0 || capacity&(capacity-1) != 0 || int64(capacity) > 1<<32 {
		panic(fmt.Sprintf("table capacity %d is not a power of two", capacity))
	}
	return &Table{
		mask: uint32(capacity - 1),
		keys: make([][]byte, capacity),
		hash: make([]uint32, capacity),
		accs: make([]Accumulator, capacity),
	}
}

// Upsert adds value to the accumulator of key, creating it if needed. hash
// must be the hash of key as produced by the parser.
func (t *Table) Upsert(key []byte, hash uint32, value float64) {
	i := hash & t.mask
	for {
		acc := &t.accs[i]
		if acc.Count == 0 {
			t.claim(i, key, hash, value)
			return
		}
		if t.hash[i] == hash && bytes.Equal(t.keys[i], key) {
			acc.Add(value)
			return
		}
		i = (i + 1) & t.mask
	}
}

func (t *Table) claim(i uint32, key []byte, hash uint32, value float64) {
	if t.len == len(t.accs)-1 {
		panic(ErrFull)
	}
	t.keys[i] = t.intern(key)
	t.hash[i] = hash
	t.accs[i] = Accumulator{Min: value, Max: value, Sum: value, Count: 1}
	t.len++
}

// intern copies key out of the input mapping into storage owned by the
// table. Names are packed into a shared arena; slices handed out earlier
// keep their old backing array alive when the arena grows.
func (t *Table) intern(key []byte) []byte {
	if cap(t.arena)-len(t.arena) < len(key) {
		t.arena = make([]byte, 0, max(4096, len(key)))
	}
	start := len(t.arena)
	t.arena = append(t.arena, key...)
	return t.arena[start:len(t.arena):len(t.arena)]
}

// Get returns the accumulator stored for key.
func (t *Table) Get(key []byte, hash uint32) (Accumulator, bool) {
	i := hash & t.mask
	for probes := 0; probes < len(t.accs); probes++ {
		if t.accs[i].Count == 0 {
			break
		}
		if t.hash[i] == hash && bytes.Equal(t.keys[i], key) {
			return t.accs[i], true
		}
		i = (i + 1) & t.mask
	}
	return Accumulator{}, false
}

// Entries lists the occupied slots in slot order. It must not run
// concurrently with Upsert.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.len)
	for i := range t.accs {
		if t.accs[i].Count == 0 {
			continue
		}
		entries = append(entries, Entry{
			Key: Key{Name: t.keys[i], Hash: t.hash[i]},
			Acc: t.accs[i],
		})
	}
	return entries
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return t.len }

// Cap returns the fixed slot count.
func (t *Table) Cap() int { return len(t.accs) }
