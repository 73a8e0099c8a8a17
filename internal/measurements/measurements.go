//
//   Copyright 2023 The original authors
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

// Package measurements writes synthetic measurement files: one
// <station>;<temperature> line per row, temperatures drawn around each
// station's mean.
package measurements

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	coldestTemp = -99.9
	hottestTemp = 99.9
	stdDev      = 10.0
)

// Station is a name and its mean temperature.
type Station struct {
	Name string
	Mean float64
}

// Random is the part of *rand.Rand the generator uses.
type Random interface {
	NormFloat64() float64
	Intn(n int) int
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// LoadStations reads name;mean lines. Lines containing '#' are comments.
func LoadStations(r io.Reader) ([]Station, error) {
	var stations []Station

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.Contains(line, "#") {
			continue
		}
		name, mean, ok := strings.Cut(line, ";")
		if !ok {
			return nil, fmt.Errorf("expected name;mean: %q", line)
		}
		m, err := strconv.ParseFloat(mean, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mean in %q: %w", line, err)
		}
		stations = append(stations, Station{Name: name, Mean: m})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("no stations found")
	}
	return stations, nil
}

// Measurement draws a temperature for s, clamped to the valid range and
// rounded to one decimal.
func (s Station) Measurement(random Random) float64 {
	t := random.NormFloat64()*stdDev + s.Mean
	t = math.Round(t*10.0) / 10.0
	t = min(max(t, coldestTemp), hottestTemp)
	if t == 0 { // check -0
		return 0
	}
	return t
}

// Generate writes rows lines to w.
func Generate(w io.Writer, stations []Station, rows int, random Random) error {
	if len(stations) == 0 {
		return fmt.Errorf("no stations to pick from")
	}

	writer := bufio.NewWriterSize(w, 1<<20)
	line := make([]byte, 0, 128)
	for i := 0; i < rows; i++ {
		station := stations[random.Intn(len(stations))]
		line = append(line[:0], station.Name...)
		line = append(line, ';')
		line = strconv.AppendFloat(line, station.Measurement(random), 'f', 1, 64)
		line = append(line, '\n')
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("error writing line: %w", err)
		}
	}
	return writer.Flush()
}

// EstimateFileSize describes the expected output size.
func EstimateFileSize(stations []Station, rows int) string {
	if len(stations) == 0 {
		return "Estimated max file size is: 0 bytes."
	}
	totalNameBytes := 0
	for _, s := range stations {
		totalNameBytes += len(s.Name)
	}
	avgNameBytes := totalNameBytes / len(stations)
	avgTempBytes := 4.400200100050025
	avgLineLength := avgNameBytes + int(avgTempBytes) + 2
	fileSize := rows * avgLineLength
	return fmt.Sprintf("Estimated max file size is: %s.", ConvertBytes(fileSize))
}

// ConvertBytes formats num with a binary unit.
func ConvertBytes(num int) string {
	units := []string{"bytes", "KiB", "MiB", "GiB"}
	var i int
	for num >= 1024 && i < len(units)-1 {
		num /= 1024
		i++
	}
	return fmt.Sprintf("%d %s", num, units[i])
}
