package baseline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	cities, err := Aggregate(strings.NewReader("Hamburg;12.0\nHamburg;14.5\nBerlin;-3.2\n"))
	require.NoError(t, err)

	assert.Equal(t, map[string]CityData{
		"Hamburg": {Min: 12.0, Max: 14.5, Sum: 26.5, Count: 2},
		"Berlin":  {Min: -3.2, Max: -3.2, Sum: -3.2, Count: 1},
	}, cities)
	assert.Equal(t, []string{"Berlin", "Hamburg"}, Names(cities))
}

func TestAggregateRejectsBadLines(t *testing.T) {
	for _, input := range []string{"Hamburg\n", "Hamburg;warm\n", "a;1.0;2.0\n"} {
		_, err := Aggregate(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}
