package checksum

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/ICRAR/benchmark-tools/pkg/stopwatch"
)

// The buffer-size sweep: 512B up to 1MiB in powers of two, then 0 for a
// single whole-buffer pass.
const (
	minBufSizeLog2 = 9
	maxBufSizeLog2 = 20
)

// Options controls one benchmark sweep.
type Options struct {
	// Tasks is the number of identical checksum runs per (variant, bufsize)
	// cell; their timings are aggregated into mean and stddev.
	Tasks int
	// Parallel runs the cell's tasks in goroutines instead of serially.
	Parallel bool
}

// Result aggregates the timings of one (variant, bufsize) cell.
type Result struct {
	Variant  string
	Checksum uint64
	BufSize  int

	MeanSpeedMBps   float64
	StddevSpeedMBps float64
	MeanTime        float64
	StddevTime      float64
	MeanSetup       float64
	StddevSetup     float64
}

// BufSizes returns the sweep's chunk sizes in reporting order.
func BufSizes() []int {
	var sizes []int
	for log2 := minBufSizeLog2; log2 <= maxBufSizeLog2; log2++ {
		sizes = append(sizes, 1<<log2)
	}
	return append(sizes, 0)
}

// Sweep benchmarks every variant against every buffer size and returns one
// Result per cell. It fails if the tasks of a cell ever disagree on the
// checksum value, since that would mean the timed work is not comparable.
func Sweep(data []byte, opts Options) ([]Result, error) {
	tasks := opts.Tasks
	if tasks < 1 {
		tasks = 1
	}

	var results []Result
	for _, variant := range Variants() {
		for _, bufsize := range BufSizes() {
			res, err := runCell(data, variant, bufsize, tasks, opts.Parallel)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

type taskTiming struct {
	checksum uint64
	start    float64
	duration float64
}

func runCell(data []byte, v Variant, bufsize, tasks int, parallel bool) (Result, error) {
	timings := make([]taskTiming, tasks)

	run := func(slot int) {
		start := stopwatch.Seconds()
		sum := Sum(v, data, bufsize)
		timings[slot] = taskTiming{
			checksum: sum,
			start:    start,
			duration: stopwatch.Elapsed(start),
		}
	}

	t0 := stopwatch.Seconds()
	if parallel {
		var wg sync.WaitGroup
		for i := 0; i < tasks; i++ {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				run(slot)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < tasks; i++ {
			run(i)
		}
	}

	sizeMB := float64(len(data)) / 1024.0 / 1024.0
	times := make([]float64, tasks)
	setups := make([]float64, tasks)
	speeds := make([]float64, tasks)
	for i, timing := range timings {
		if timing.checksum != timings[0].checksum {
			return Result{}, fmt.Errorf("different %s results obtained: %#x vs %#x",
				v.Name, timing.checksum, timings[0].checksum)
		}
		times[i] = timing.duration
		setups[i] = timing.start - t0
		speeds[i] = sizeMB / timing.duration
	}

	res := Result{
		Variant:  v.Name,
		Checksum: timings[0].checksum,
		BufSize:  bufsize,
	}
	res.MeanSpeedMBps, res.StddevSpeedMBps = meanStddev(speeds)
	res.MeanTime, res.StddevTime = meanStddev(times)
	res.MeanSetup, res.StddevSetup = meanStddev(setups)
	return res, nil
}

func meanStddev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}
	return stat.MeanStdDev(xs, nil)
}
