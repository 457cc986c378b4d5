package osinfo

import "net/netip"

// CPUInfo describes one logical CPU core.
type CPUInfo struct {
	Model string   `json:"model" yaml:"model"`
	Speed int64    `json:"speed" yaml:"speed"`
	Times CPUTimes `json:"times" yaml:"times"`
}

// CPUTimes holds cumulative per-core times in milliseconds.
type CPUTimes struct {
	User uint64 `json:"user" yaml:"user"`
	Nice uint64 `json:"nice" yaml:"nice"`
	Sys  uint64 `json:"sys" yaml:"sys"`
	Idle uint64 `json:"idle" yaml:"idle"`
	Irq  uint64 `json:"irq" yaml:"irq"`
}

// LoadAverage holds the 1, 5 and 15 minute load averages. Slots the
// platform cannot report are set to -1.
type LoadAverage [3]float64

// NetworkInterface is one interface-address pair.
type NetworkInterface struct {
	Name     string  `json:"name" yaml:"name"`
	MAC      string  `json:"mac" yaml:"mac"`
	Address  string  `json:"address" yaml:"address"`
	ScopeID  *uint32 `json:"scopeId,omitempty" yaml:"scopeId,omitempty"`
	Netmask  string  `json:"netmask" yaml:"netmask"`
	Internal bool    `json:"internal" yaml:"internal"`
}

// Family tags the address family of a SockAddr.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// SockAddr is a family-tagged socket address as reported by the OS.
// ScopeID is only meaningful for FamilyIPv6.
type SockAddr struct {
	Family  Family
	Addr    netip.Addr
	ScopeID uint32
}

// RawCPU is a per-core record as returned by a Source.
type RawCPU struct {
	Model    string
	SpeedMHz float64

	// Times are in seconds.
	User, Nice, Sys, Idle, Irq float64
}

// RawInterface is an interface-address record as returned by a Source.
type RawInterface struct {
	Name     string
	PhysAddr [6]byte
	Address  SockAddr
	Netmask  SockAddr
	Internal bool
}
