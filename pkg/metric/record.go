package metric

// BenchRecord is one exported benchmark measurement. One record corresponds
// to one (variant, buffer size) cell of a sweep; timings are aggregates over
// the cell's tasks.
type BenchRecord struct {
	RunID     string `csv:"runID"`
	Benchmark string `csv:"benchmark"`
	Timestamp int64  `csv:"timestamp"`

	Variant  string  `csv:"variant"`
	Checksum uint64  `csv:"checksum"`
	BufSize  int     `csv:"bufSize"`
	Tasks    int     `csv:"tasks"`
	DataMB   float64 `csv:"dataMb"`

	MeanSpeedMBps   float64 `csv:"meanSpeedMbps"`
	StddevSpeedMBps float64 `csv:"stddevSpeedMbps"`
	MeanTime        float64 `csv:"meanTime"`
	StddevTime      float64 `csv:"stddevTime"`
	MeanSetup       float64 `csv:"meanSetup"`
	StddevSetup     float64 `csv:"stddevSetup"`
}
