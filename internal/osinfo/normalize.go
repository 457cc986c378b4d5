package osinfo

import (
	"encoding/hex"
	"math"
)

func normalizeCPU(raw RawCPU) CPUInfo {
	return CPUInfo{
		Model: raw.Model,
		Speed: int64(math.Round(raw.SpeedMHz)),
		Times: CPUTimes{
			User: millis(raw.User),
			Nice: millis(raw.Nice),
			Sys:  millis(raw.Sys),
			Idle: millis(raw.Idle),
			Irq:  millis(raw.Irq),
		},
	}
}

// millis converts seconds to whole milliseconds, clamping at zero.
func millis(seconds float64) uint64 {
	if !(seconds > 0) || math.IsInf(seconds, 1) {
		return 0
	}
	return uint64(math.Round(seconds * 1000))
}

func normalizeInterface(raw RawInterface) NetworkInterface {
	iface := NetworkInterface{
		Name:     raw.Name,
		MAC:      formatMAC(raw.PhysAddr),
		Address:  formatSockAddr(raw.Address),
		Netmask:  formatSockAddr(raw.Netmask),
		Internal: raw.Internal,
	}
	if raw.Address.Family == FamilyIPv6 {
		scope := raw.Address.ScopeID
		iface.ScopeID = &scope
	}
	return iface
}

// formatMAC renders six octets as lowercase colon-separated hex.
func formatMAC(mac [6]byte) string {
	buf := make([]byte, 0, 17)
	for i, b := range mac {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, hex.EncodeToString([]byte{b})...)
	}
	return string(buf)
}

// formatSockAddr renders the textual form of sa. Unknown families render as
// the empty string.
func formatSockAddr(sa SockAddr) string {
	switch sa.Family {
	case FamilyIPv4:
		if !sa.Addr.IsValid() {
			return ""
		}
		return sa.Addr.Unmap().String()
	case FamilyIPv6:
		if !sa.Addr.IsValid() {
			return ""
		}
		return sa.Addr.WithZone("").String()
	default:
		return ""
	}
}
