package report

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xpug.it/stationavg/internal/parse"
	"xpug.it/stationavg/internal/table"
)

func tableOf(t *testing.T, lines string) *table.Table {
	t.Helper()
	tbl := table.New(256)
	parse.Into(tbl, []byte(lines))
	return tbl
}

func TestRoundJava(t *testing.T) {
	for _, tc := range []struct {
		value    float64
		expected string
	}{
		{value: -1.5, expected: "-1.0"},
		{value: -1.0, expected: "-1.0"},
		{value: -0.7, expected: "-1.0"},
		{value: -0.5, expected: "0.0"},
		{value: -0.3, expected: "0.0"},
		{value: 0.0, expected: "0.0"},
		{value: 0.3, expected: "0.0"},
		{value: 0.5, expected: "1.0"},
		{value: 0.7, expected: "1.0"},
		{value: 1.0, expected: "1.0"},
		{value: 1.5, expected: "2.0"},
		{value: -66.5, expected: "-66.0"},
	} {
		if rounded := roundJava(tc.value); fmt.Sprintf("%.1f", rounded) != tc.expected {
			t.Errorf("Wrong rounding of %v, expected: %s, got: %.1f", tc.value, tc.expected, rounded)
		}
	}
}

func TestRound(t *testing.T) {
	for _, tc := range []struct {
		value float64
		away  float64
		java  float64
	}{
		{value: 13.25, away: 13.3, java: 13.3},
		{value: -6.65, away: -6.7, java: -6.6},
		{value: -0.05, away: -0.1, java: 0},
		{value: 0.05, away: 0.1, java: 0.1},
		{value: -0.04, away: 0, java: 0},
		{value: -3.2, away: -3.2, java: -3.2},
		{value: 99.9, away: 99.9, java: 99.9},
		{value: -99.9, away: -99.9, java: -99.9},
		{value: 12.34, away: 12.3, java: 12.3},
		{value: -12.36, away: -12.4, java: -12.4},
	} {
		assert.Equal(t, tc.away, HalfAwayFromZero.Round(tc.value), "away %v", tc.value)
		assert.Equal(t, tc.java, HalfUp.Round(tc.value), "java %v", tc.value)
	}
}

func TestRoundNeverReturnsNegativeZero(t *testing.T) {
	for _, mode := range []Rounding{HalfAwayFromZero, HalfUp} {
		for _, v := range []float64{-0.0, -0.01, -0.04, math.Copysign(0, -1)} {
			assert.False(t, math.Signbit(mode.Round(v)), "%s %v", mode, v)
		}
	}
}

func TestRoundIsIdempotent(t *testing.T) {
	for _, mode := range []Rounding{HalfAwayFromZero, HalfUp} {
		for i := -20000; i <= 20000; i += 7 {
			x := float64(i) / 200
			once := mode.Round(x)
			assert.Equal(t, once, mode.Round(once), "%s %v", mode, x)
		}
	}
}

func TestParseRounding(t *testing.T) {
	for name, want := range map[string]Rounding{"": HalfAwayFromZero, "away": HalfAwayFromZero, "java": HalfUp} {
		got, err := ParseRounding(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseRounding("banker")
	assert.Error(t, err)
}

func TestScenarios(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		away  string
		java  string
	}{
		{
			name:  "mean rounds up",
			input: "Hamburg;12.0\nHamburg;14.5\nBerlin;-3.2\n",
			away:  "{Berlin=-3.2/-3.2/-3.2, Hamburg=12.0/13.3/14.5}",
			java:  "{Berlin=-3.2/-3.2/-3.2, Hamburg=12.0/13.3/14.5}",
		},
		{
			name:  "single line",
			input: "Tokyo;0.0\n",
			away:  "{Tokyo=0.0/0.0/0.0}",
			java:  "{Tokyo=0.0/0.0/0.0}",
		},
		{
			name:  "negative tie",
			input: "Oslo;-15.4\nOslo;2.1\n",
			away:  "{Oslo=-15.4/-6.7/2.1}",
			java:  "{Oslo=-15.4/-6.6/2.1}",
		},
		{
			name:  "negative mean rounding to zero",
			input: "Nuuk;-0.1\nNuuk;0.0\n",
			away:  "{Nuuk=-0.1/-0.1/0.0}",
			java:  "{Nuuk=-0.1/0.0/0.0}",
		},
		{
			name:  "empty",
			input: "",
			away:  "{}",
			java:  "{}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Merge(tableOf(t, tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.away, res.Format(HalfAwayFromZero))
			assert.Equal(t, tc.java, res.Format(HalfUp))
		})
	}
}

func TestWriteAddsNewline(t *testing.T) {
	res, err := Merge(tableOf(t, "Tokyo;0.0\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf, HalfAwayFromZero))
	assert.Equal(t, "{Tokyo=0.0/0.0/0.0}\n", buf.String())
}

func TestMergeAcrossTables(t *testing.T) {
	a := tableOf(t, "Hamburg;12.0\nBerlin;-3.2\n")
	b := tableOf(t, "Hamburg;14.5\nOslo;1.0\n")
	c := tableOf(t, "Berlin;30.1\n")

	res, err := Merge(a, nil, b, c)
	require.NoError(t, err)

	want := []Station{
		{Name: "Berlin", Accumulator: table.Accumulator{Min: -3.2, Max: 30.1, Sum: 26.9, Count: 2}},
		{Name: "Hamburg", Accumulator: table.Accumulator{Min: 12.0, Max: 14.5, Sum: 26.5, Count: 2}},
		{Name: "Oslo", Accumulator: table.Accumulator{Min: 1.0, Max: 1.0, Sum: 1.0, Count: 1}},
	}
	// Berlin's sum is accumulated at run time and is not exactly 26.9
	if diff := cmp.Diff(want, res.Stations, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	s, ok := res.Get("Hamburg")
	require.True(t, ok)
	assert.InDelta(t, 13.25, s.Mean(), 1e-12)
	_, ok = res.Get("Hamburger")
	assert.False(t, ok)
}

func TestMergeOrderIsByteWise(t *testing.T) {
	// 'Z' < 'a' < 0xc3 (first byte of É) in byte order
	res, err := Merge(tableOf(t, "a;1.0\nZ;1.0\nÉcole;1.0\nab;1.0\n"))
	require.NoError(t, err)

	var names []string
	for _, s := range res.Stations {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Z", "a", "ab", "École"}, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestCombineRejectsMismatchedKeys(t *testing.T) {
	a := table.Entry{Key: table.Key{Name: []byte("Oslo")}, Acc: table.Accumulator{Min: 1, Max: 1, Sum: 1, Count: 1}}
	b := table.Entry{Key: table.Key{Name: []byte("Bergen")}, Acc: table.Accumulator{Min: 2, Max: 2, Sum: 2, Count: 1}}

	_, err := Combine(a, b)
	assert.ErrorIs(t, err, ErrKeyMismatch)

	got, err := Combine(a, table.Entry{Key: table.Key{Name: []byte("Oslo")}, Acc: b.Acc})
	require.NoError(t, err)
	assert.Equal(t, table.Accumulator{Min: 1, Max: 2, Sum: 3, Count: 2}, got.Acc)
}

func TestMergeEntriesMatchesMerge(t *testing.T) {
	a := tableOf(t, "x;1.0\ny;2.0\n")
	b := tableOf(t, "y;-2.0\nz;5.5\n")

	viaTables, err := Merge(a, b)
	require.NoError(t, err)
	viaEntries, err := MergeEntries(b.Entries(), a.Entries())
	require.NoError(t, err)

	assert.Equal(t, viaTables.Format(HalfAwayFromZero), viaEntries.Format(HalfAwayFromZero))
}
