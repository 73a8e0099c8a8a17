// Package baseline is the straightforward single-threaded aggregation:
// bufio.Scanner, strings.Split and strconv.ParseFloat into a Go map. It is
// slow and only serves as a reference for the fast path.
package baseline

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

type CityData struct {
	Min   float64
	Max   float64
	Sum   float64
	Count int64
}

// Aggregate reads every line of r.
func Aggregate(r io.Reader) (map[string]CityData, error) {
	cities := map[string]CityData{}

	scanner := bufio.NewScanner(r)

	var line string
	var parts []string
	var city string
	var temp float64
	var err error

	for scanner.Scan() {
		line = scanner.Text()
		parts = strings.Split(line, ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected two fields: %q", line)
		}
		city = parts[0]
		temp, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temp in %q: %w", line, err)
		}

		data, present := cities[city]

		if !present {
			cities[city] = CityData{Min: temp, Max: temp, Sum: temp, Count: 1}
		} else {
			data.Count++
			data.Sum += temp

			if temp < data.Min {
				data.Min = temp
			}
			if temp > data.Max {
				data.Max = temp
			}

			cities[city] = data
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cities, nil
}

// Names returns the cities sorted.
func Names(cities map[string]CityData) []string {
	keys := maps.Keys(cities)
	sort.Strings(keys)
	return keys
}
