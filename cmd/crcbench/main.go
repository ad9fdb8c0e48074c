package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ICRAR/benchmark-tools/pkg/checksum"
	"github.com/ICRAR/benchmark-tools/pkg/metric"
	"github.com/ICRAR/benchmark-tools/pkg/sysinfo"
)

var (
	tasks     = flag.Int("n", 1, "Number of checksums to perform per algorithm and buffer size")
	file      = flag.String("f", "", "File contents to checksum; if none given fake data is checksumed")
	megabytes = flag.Int("m", 128, "Number of megabytes to checksum, mutually exclusive with -f")
	parallel  = flag.Bool("parallel", false, "Run the tasks of each cell in parallel goroutines")
	csvPath   = flag.String("csv", "", "Also export the results as CSV to the given path")
	verbosity = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
)

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// checkDataFlags validates the data-source flags: -f and -m are mutually
// exclusive, and a fake-data buffer needs a positive size.
func checkDataFlags(fileGiven, megabytesGiven bool, megabytes int) error {
	if fileGiven && megabytesGiven {
		return fmt.Errorf("-f and -m are mutually exclusive")
	}
	if !fileGiven && megabytes <= 0 {
		return fmt.Errorf("-m must be a positive number of megabytes, got %d", megabytes)
	}
	return nil
}

func loadData() []byte {
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal("Fail to read input file: ", err)
		}
		fmt.Printf("Checking file %s (%d bytes)\n\n", *file, len(data))
		return data
	}
	return bytes.Repeat([]byte{' '}, *megabytes*1024*1024)
}

func main() {
	flag.Parse()
	setupLogging()

	fileGiven, megabytesGiven := false, false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			fileGiven = true
		case "m":
			megabytesGiven = true
		}
	})
	if err := checkDataFlags(fileGiven, megabytesGiven, *megabytes); err != nil {
		log.Fatal(err)
	}

	data := loadData()
	sizeMB := float64(len(data)) / 1024.0 / 1024.0

	sysinfo.LogCPU()

	mechanism := "serial evaluation(s)"
	if *parallel {
		mechanism = "goroutine(s)"
	}
	fmt.Printf("Using go: %s\n", runtime.Version())
	fmt.Printf("Checksuming %.2f [MB] using %d %s\n", sizeMB, *tasks, mechanism)
	fmt.Println("Checksum methods to be tested:")
	for _, v := range checksum.Variants() {
		fmt.Printf(" * %s: %s\n", v.Name, v.Description)
	}

	results, err := checksum.Sweep(data, checksum.Options{
		Tasks:    *tasks,
		Parallel: *parallel,
	})
	if err != nil {
		log.Fatal(err)
	}

	printTable(results)

	if *csvPath != "" {
		exportCSV(results, sizeMB)
	}
}

func printTable(results []checksum.Result) {
	fmt.Println()
	fmt.Println("Algo     Chksum   Chksum(int)          BufSize         Speed [MB/s]       Time [s] Setup Time [s]")
	fmt.Println("======== ======== ==================== ======= ==================== ============== ==============")
	for _, res := range results {
		fmt.Printf("%-8s %08x %20d %-7d %9.3f ± %8.3f %6.3f ± %5.3f %6.3f ± %5.3f\n",
			res.Variant, uint32(res.Checksum), res.Checksum, res.BufSize,
			res.MeanSpeedMBps, res.StddevSpeedMBps,
			res.MeanTime, res.StddevTime,
			res.MeanSetup, res.StddevSetup)
	}
}

func exportCSV(results []checksum.Result, sizeMB float64) {
	runID := uuid.New().String()
	collector := metric.NewCollector()

	for _, res := range results {
		collector.Report(metric.BenchRecord{
			RunID:           runID,
			Benchmark:       "crc",
			Timestamp:       time.Now().UnixMicro(),
			Variant:         res.Variant,
			Checksum:        res.Checksum,
			BufSize:         res.BufSize,
			Tasks:           *tasks,
			DataMB:          sizeMB,
			MeanSpeedMBps:   res.MeanSpeedMBps,
			StddevSpeedMBps: res.StddevSpeedMBps,
			MeanTime:        res.MeanTime,
			StddevTime:      res.StddevTime,
			MeanSetup:       res.MeanSetup,
			StddevSetup:     res.StddevSetup,
		})
	}

	if err := collector.Export(*csvPath); err != nil {
		log.Fatal("Fail to export benchmark records: ", err)
	}
	log.Infof("Benchmark records written to %s (run %s)", *csvPath, runID)
}
