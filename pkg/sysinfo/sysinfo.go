package sysinfo

import (
	"fmt"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	log "github.com/sirupsen/logrus"
)

// CPU describes the processor the benchmarks run on, so throughput figures
// can be tied to hardware.
type CPU struct {
	Model        string
	PhysicalCore int
	LogicalCore  int
	Mhz          float64
}

func CollectCPU() (CPU, error) {
	cpuInfo, err := gcpu.Info()
	if err != nil {
		return CPU{}, err
	}
	if len(cpuInfo) == 0 {
		return CPU{}, fmt.Errorf("no CPU information available")
	}

	physical, err := gcpu.Counts(false)
	if err != nil {
		return CPU{}, err
	}
	logical, err := gcpu.Counts(true)
	if err != nil {
		return CPU{}, err
	}

	return CPU{
		Model:        cpuInfo[0].ModelName,
		PhysicalCore: physical,
		LogicalCore:  logical,
		Mhz:          cpuInfo[0].Mhz,
	}, nil
}

// LogCPU writes a one-line hardware banner at debug level. Failure to read
// the CPU information is not fatal for a benchmark run.
func LogCPU() {
	cpu, err := CollectCPU()
	if err != nil {
		log.Debugf("Unable to retrieve CPU information: %v", err)
		return
	}

	log.Debugf("CPU: %s, %d physical / %d logical cores, %.2f MHz",
		cpu.Model, cpu.PhysicalCore, cpu.LogicalCore, cpu.Mhz)
}
