// stationavg prints the min/mean/max temperature of every station in a
// measurements file.
//
// stationavg [flags] [measurements.txt]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"xpug.it/stationavg/internal/pipeline"
	"xpug.it/stationavg/internal/region"
	"xpug.it/stationavg/internal/report"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
	workers    = flag.Int("workers", runtime.NumCPU(), "number of parsing goroutines")
	backend    = flag.String("backend", string(region.Mmap), "how to read the input: mmap, unix, readat or readat-exp")
	rounding   = flag.String("rounding", "away", "tie breaking when rounding to one decimal: away (from zero) or java (towards +inf)")
	verbose    = flag.Bool("v", false, "log a run summary to stderr")
)

func main() {
	flag.Parse()
	name, err := dataFileName(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(os.Stdout, name); err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}

func dataFileName(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "measurements.txt", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("expected at most one measurements file, got %d arguments", len(args))
}

func run(w io.Writer, name string) error {
	b, err := region.ParseBackend(*backend)
	if err != nil {
		return err
	}
	mode, err := report.ParseRounding(*rounding)
	if err != nil {
		return err
	}

	start := time.Now()
	data, err := region.Open(name, b)
	if err != nil {
		return err
	}
	defer data.Close()

	res, stats, err := pipeline.Run(data, pipeline.Config{Workers: *workers})
	if err != nil {
		return fmt.Errorf("processing %s: %w", name, err)
	}
	if err := res.Write(w, mode); err != nil {
		return err
	}

	if *verbose {
		log.Printf("%s: %d bytes, %d chunks, %d workers, %d stations, backend %s, took %s",
			name, stats.Bytes, stats.Chunks, stats.Workers, len(res.Stations), b, time.Since(start))
	}
	return nil
}
