package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ICRAR/benchmark-tools/pkg/flops"
	"github.com/ICRAR/benchmark-tools/pkg/stopwatch"
)

const defaultOps = 1000

// parseOps converts the single CLI argument (millions of operations, as a
// float) into an elementary operation count. Unparsable, zero and negative
// arguments all fall back to a tiny default run.
func parseOps(arg string) int64 {
	millions, _ := strconv.ParseFloat(arg, 64)
	n := int64(millions * 1000000)
	if n <= 0 {
		n = defaultOps
	}
	return n
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("usage: %s <num>\n", os.Args[0])
		fmt.Printf("number of operations: <num> millions\n")
		os.Exit(1)
	}

	n := parseOps(os.Args[1])

	start := stopwatch.Seconds()
	res := flops.AddMul(flops.ReferenceAdd, flops.ReferenceMul, n)
	elapsed := stopwatch.Elapsed(start)

	fmt.Printf("addmul:\t %.3f s, %.3f Gflops, N=%d, res=%f\n",
		elapsed, float64(n)/elapsed/1e9, n, res)
}
