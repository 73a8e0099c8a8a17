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

// createmeasurements writes a synthetic measurements file.
//
// go run ./cmd/createmeasurements [-o measurements.txt] [-stations weather_stations.csv] 1000000
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"xpug.it/stationavg/internal/measurements"
)

var (
	output       = flag.String("o", "measurements.txt", "write measurements to `file`")
	stationsFile = flag.String("stations", "", "read station;mean lines from `file` instead of the built-in list")
	seed         = flag.Int64("seed", 0, "random seed, current time if 0")
)

func checkArgs(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("incorrect number of arguments - see example usage, createmeasurements 1000")
	}
	numRows, err := strconv.Atoi(args[0])
	if err != nil || numRows <= 0 {
		return 0, fmt.Errorf("argument must be a positive integer - see example usage, createmeasurements 1000")
	}
	return numRows, nil
}

func loadStations(name string) ([]measurements.Station, error) {
	if name == "" {
		return measurements.DefaultStations, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return measurements.LoadStations(f)
}

func run(numRows int) error {
	stations, err := loadStations(*stationsFile)
	if err != nil {
		return fmt.Errorf("loading stations: %w", err)
	}
	fmt.Println(measurements.EstimateFileSize(stations, numRows))

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	startTime := time.Now()
	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	if err := measurements.Generate(file, stations, numRows, measurements.NewRandom(s)); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Printf("Created file %s with %d measurements in %s\n", *output, numRows, time.Since(startTime))
	return nil
}

func main() {
	flag.Parse()
	numRows, err := checkArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(numRows); err != nil {
		log.Fatalf("Failed to build test data: %v", err)
	}
}
