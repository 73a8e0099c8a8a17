// Package parse scans measurement lines straight into an aggregation table.
//
// A line is <name>;<temperature>\n where the temperature matches
// -?[0-9]{1,2}\.[0-9]. Input is not validated: anything else yields
// garbage values or an index panic.
package parse

import "xpug.it/stationavg/internal/table"

// Hash is the rolling hash the parser computes over a station name.
func Hash(name []byte) uint32 {
	var h uint32
	for _, b := range name {
		h = 31*h + uint32(b)
	}
	return h
}

// Into upserts every record of data into t. data must hold whole lines; a
// missing newline after the last line is tolerated.
func Into(t *table.Table, data []byte) {
	pos := 0
	for pos < len(data) {
		start := pos
		var h uint32
		for data[pos] != ';' {
			h = 31*h + uint32(data[pos])
			pos++
		}
		name := data[start:pos]
		pos++

		value, n := Temperature(data[pos:])
		pos += n
		t.Upsert(name, h, value)
	}
}

// Temperature decodes the value at the start of b and returns it with the
// number of bytes consumed, newline included when present.
func Temperature(b []byte) (float64, int) {
	sign, pos := 1.0, 0
	if b[0] == '-' {
		sign, pos = -1.0, 1
	}

	var v float64
	d0 := float64(b[pos] - '0')
	if b[pos+1] == '.' {
		// 1.2
		v = d0 + float64(b[pos+2]-'0')/10
		pos += 3
	} else {
		// 12.3
		v = d0*10 + float64(b[pos+1]-'0') + float64(b[pos+3]-'0')/10
		pos += 4
	}

	if pos < len(b) {
		// newline
		pos++
	}
	return sign * v, pos
}
