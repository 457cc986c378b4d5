package osinfo

import (
	"net"
	"net/netip"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	psnet "github.com/shirou/gopsutil/v3/net"
)

var (
	cpuPool       recordPool[RawCPU]
	interfacePool recordPool[RawInterface]
)

// gopsutilSource queries the host through gopsutil.
type gopsutilSource struct{}

// NewHostSource returns the Source backed by the running host.
func NewHostSource() Source {
	return gopsutilSource{}
}

func (gopsutilSource) CPUs() (*Buffer[RawCPU], error) {
	times, err := cpu.Times(true)
	if err != nil {
		return nil, toPlatformError(err)
	}
	infos, err := cpu.Info()
	if err != nil {
		return nil, toPlatformError(err)
	}

	records := cpuPool.get()
	for i, t := range times {
		records = append(records, RawCPU{
			Model:    infoFor(infos, i).ModelName,
			SpeedMHz: infoFor(infos, i).Mhz,
			User:     t.User,
			Nice:     t.Nice,
			Sys:      t.System,
			Idle:     t.Idle,
			Irq:      t.Irq,
		})
	}
	return cpuPool.buffer(records), nil
}

// infoFor pairs a per-core times entry with its model entry. Some platforms
// report one model entry per package rather than per core; the last entry
// then stands in for the remaining cores.
func infoFor(infos []cpu.InfoStat, i int) cpu.InfoStat {
	switch {
	case len(infos) == 0:
		return cpu.InfoStat{}
	case i < len(infos):
		return infos[i]
	default:
		return infos[len(infos)-1]
	}
}

func (gopsutilSource) LoadAvg() ([3]float64, bool) {
	avg, err := load.Avg()
	if err != nil || avg == nil {
		return [3]float64{-1, -1, -1}, false
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, true
}

func (gopsutilSource) Interfaces() (*Buffer[RawInterface], error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, toPlatformError(err)
	}

	records := interfacePool.get()
	for _, iface := range ifaces {
		if !isUp(iface.Flags) {
			continue
		}
		mac := physAddr(iface.HardwareAddr)
		internal := slices.Contains(iface.Flags, "loopback")
		for _, a := range iface.Addrs {
			address, netmask := sockAddrsFromCIDR(a.Addr, iface.Index)
			records = append(records, RawInterface{
				Name:     iface.Name,
				PhysAddr: mac,
				Address:  address,
				Netmask:  netmask,
				Internal: internal,
			})
		}
	}
	return interfacePool.buffer(records), nil
}

// isUp reports whether an interface is administratively up. Addresses of
// interfaces that are down are not reported.
func isUp(flags []string) bool {
	return slices.Contains(flags, "up")
}

// physAddr parses a hardware address, keeping the first six octets.
// Interfaces without one, such as loopback, get the zero address.
func physAddr(s string) [6]byte {
	var mac [6]byte
	if s == "" {
		return mac
	}
	hw, err := net.ParseMAC(s)
	if err != nil {
		return mac
	}
	copy(mac[:], hw)
	return mac
}

// sockAddrsFromCIDR splits an address in CIDR notation into the address and
// its netmask. Link-local IPv6 addresses are scoped to the interface index.
// Anything unparsable is returned with FamilyUnknown.
func sockAddrsFromCIDR(cidr string, index int) (address, netmask SockAddr) {
	if i := strings.IndexByte(cidr, '%'); i >= 0 {
		if j := strings.IndexByte(cidr[i:], '/'); j >= 0 {
			cidr = cidr[:i] + cidr[i+j:]
		} else {
			cidr = cidr[:i]
		}
	}

	var prefix netip.Prefix
	if strings.Contains(cidr, "/") {
		p, err := netip.ParsePrefix(cidr)
		if err != nil {
			return SockAddr{}, SockAddr{}
		}
		prefix = p
	} else {
		addr, err := netip.ParseAddr(cidr)
		if err != nil {
			return SockAddr{}, SockAddr{}
		}
		prefix = netip.PrefixFrom(addr, addr.BitLen())
	}

	addr := prefix.Addr()
	mask, _ := netip.AddrFromSlice(net.CIDRMask(prefix.Bits(), addr.BitLen()))

	if addr.Is4() {
		return SockAddr{Family: FamilyIPv4, Addr: addr}, SockAddr{Family: FamilyIPv4, Addr: mask}
	}

	address = SockAddr{Family: FamilyIPv6, Addr: addr}
	if addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() {
		address.ScopeID = uint32(index)
	}
	return address, SockAddr{Family: FamilyIPv6, Addr: mask}
}
