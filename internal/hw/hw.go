package hw

import (
	"fmt"

	"github.com/jaypipes/ghw"
)

// GetTopology returns the CPU package/core/thread layout of the host.
func GetTopology() (*Topology, error) {
	cpu, err := ghw.CPU()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	return newTopology(cpu), nil
}

func newTopology(cpu *ghw.CPUInfo) *Topology {
	topo := &Topology{
		TotalCores: cpu.TotalCores,
		Packages:   []CPUPackage{},
	}

	for _, p := range cpu.Processors {
		threads := 0
		for _, core := range p.Cores {
			threads += len(core.LogicalProcessors)
		}
		topo.TotalThreads += uint32(threads)

		topo.Packages = append(topo.Packages, CPUPackage{
			ID:      p.ID,
			Vendor:  p.Vendor,
			Model:   p.Model,
			Cores:   len(p.Cores),
			Threads: threads,
		})
	}

	return topo
}
