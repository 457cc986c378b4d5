// Package osinfo reports CPU, load average and network interface facts
// about the host. Every call queries the operating system afresh and
// returns values that the caller owns.
package osinfo

import (
	"log/slog"
	"sync"
)

// Inspector runs host queries against a Source. It keeps no state between
// calls and is safe for concurrent use.
type Inspector struct {
	src    Source
	logger *slog.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithSource replaces the host Source.
func WithSource(src Source) Option {
	return func(in *Inspector) {
		in.src = src
	}
}

// WithLogger sets the logger used for query diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Inspector) {
		in.logger = logger
	}
}

// New creates an Inspector backed by the host unless WithSource says otherwise.
func New(opts ...Option) *Inspector {
	in := &Inspector{}
	for _, opt := range opts {
		opt(in)
	}
	if in.src == nil {
		in.src = NewHostSource()
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}
	return in
}

// CPUInfo returns one entry per logical core in the order the OS reports
// them. On failure it returns a *PlatformError and no entries.
func (in *Inspector) CPUInfo() ([]CPUInfo, error) {
	buf, err := in.src.CPUs()
	if err != nil {
		pe := toPlatformError(err)
		in.logger.Debug("cpu query failed", "code", pe.Code, "error", pe.Message)
		return nil, pe
	}
	if buf == nil {
		return []CPUInfo{}, nil
	}
	defer buf.Release()

	return assemble(buf.Records, normalizeCPU), nil
}

// LoadAvg returns the 1, 5 and 15 minute load averages. It never fails;
// platforms without load averages get -1 in every slot.
func (in *Inspector) LoadAvg() LoadAverage {
	avg, ok := in.src.LoadAvg()
	if !ok {
		in.logger.Debug("load average not supported on this platform")
		return LoadAverage{-1, -1, -1}
	}
	return LoadAverage(avg)
}

// NetworkInterfaces returns one entry per interface address in OS order.
// On failure it returns a *PlatformError and no entries.
func (in *Inspector) NetworkInterfaces() ([]NetworkInterface, error) {
	buf, err := in.src.Interfaces()
	if err != nil {
		pe := toPlatformError(err)
		in.logger.Debug("interface query failed", "code", pe.Code, "error", pe.Message)
		return nil, pe
	}
	if buf == nil {
		return []NetworkInterface{}, nil
	}
	defer buf.Release()

	ifaces := assemble(buf.Records, normalizeInterface)
	for _, iface := range ifaces {
		if iface.Address == "" {
			in.logger.Warn("interface address has unsupported family", "interface", iface.Name)
		}
	}
	return ifaces, nil
}

var defaultInspector = sync.OnceValue(func() *Inspector { return New() })

// HostCPUInfo queries the host with the default Inspector.
func HostCPUInfo() ([]CPUInfo, error) {
	return defaultInspector().CPUInfo()
}

// HostLoadAvg queries the host with the default Inspector.
func HostLoadAvg() LoadAverage {
	return defaultInspector().LoadAvg()
}

// HostNetworkInterfaces queries the host with the default Inspector.
func HostNetworkInterfaces() ([]NetworkInterface, error) {
	return defaultInspector().NetworkInterfaces()
}
