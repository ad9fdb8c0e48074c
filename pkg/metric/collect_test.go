package metric

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorExportRoundTrip(t *testing.T) {
	collector := NewCollector()
	collector.Report(BenchRecord{
		RunID:         "run-1",
		Benchmark:     "crc",
		Variant:       "crc32",
		Checksum:      0xcbf43926,
		BufSize:       512,
		Tasks:         2,
		DataMB:        128,
		MeanSpeedMBps: 1234.5,
		MeanTime:      0.104,
	})
	collector.Report(BenchRecord{
		RunID:     "run-1",
		Benchmark: "crc",
		Variant:   "xxhash64",
		BufSize:   0,
		Tasks:     2,
		DataMB:    128,
	})

	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, collector.Export(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []BenchRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &records))

	require.Len(t, records, 2)
	assert.Equal(t, "crc32", records[0].Variant)
	assert.Equal(t, uint64(0xcbf43926), records[0].Checksum)
	assert.Equal(t, 512, records[0].BufSize)
	assert.Equal(t, "xxhash64", records[1].Variant)
}

func TestConcurrentReporting(t *testing.T) {
	collector := NewCollector()
	var wg sync.WaitGroup

	const perWorker = 100
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				collector.Report(BenchRecord{Benchmark: "crc"})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, collector.Records(), 4*perWorker)
}
