package osinfo

// Source performs the raw platform queries. Each call issues exactly one OS
// query. Buffers returned by CPUs and Interfaces must be released exactly
// once by the caller.
type Source interface {
	CPUs() (*Buffer[RawCPU], error)
	// LoadAvg reports ok=false when the platform has no load average.
	LoadAvg() (avg [3]float64, ok bool)
	Interfaces() (*Buffer[RawInterface], error)
}
