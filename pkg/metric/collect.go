package metric

import (
	"os"
	"sync"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// Collector gathers benchmark records for a later CSV export. Safe for
// concurrent reporting.
type Collector struct {
	mutex   sync.Mutex
	records []BenchRecord
}

func NewCollector() *Collector {
	return &Collector{
		records: []BenchRecord{},
	}
}

func (collector *Collector) Report(record BenchRecord) {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	collector.records = append(collector.records, record)
}

func (collector *Collector) Records() []BenchRecord {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	out := make([]BenchRecord, len(collector.records))
	copy(out, collector.records)
	return out
}

// Export writes all collected records to a CSV file at the given path.
func (collector *Collector) Export(path string) error {
	collector.mutex.Lock()
	defer collector.mutex.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&collector.records, f); err != nil {
		return err
	}

	log.Debugf("Exported %d benchmark records to %s", len(collector.records), path)
	return nil
}
