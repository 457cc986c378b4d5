package osinfo

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	cpus   []RawCPU
	cpuErr error

	avg   [3]float64
	avgOK bool

	ifaces   []RawInterface
	ifaceErr error

	// noBuffer makes CPUs and Interfaces return a nil buffer and no error.
	noBuffer bool

	cpuReleases   int
	ifaceReleases int
}

func (f *fakeSource) CPUs() (*Buffer[RawCPU], error) {
	if f.cpuErr != nil || f.noBuffer {
		return nil, f.cpuErr
	}
	records := append([]RawCPU(nil), f.cpus...)
	return NewBuffer(records, func(r []RawCPU) {
		f.cpuReleases++
		clear(r)
	}), nil
}

func (f *fakeSource) LoadAvg() ([3]float64, bool) {
	if !f.avgOK {
		return [3]float64{}, false
	}
	return f.avg, true
}

func (f *fakeSource) Interfaces() (*Buffer[RawInterface], error) {
	if f.ifaceErr != nil || f.noBuffer {
		return nil, f.ifaceErr
	}
	records := append([]RawInterface(nil), f.ifaces...)
	return NewBuffer(records, func(r []RawInterface) {
		f.ifaceReleases++
		clear(r)
	}), nil
}

var macPattern = regexp.MustCompile(`^[0-9a-f]{2}(:[0-9a-f]{2}){5}$`)

func TestCPUInfoSingleCore(t *testing.T) {
	src := &fakeSource{cpus: []RawCPU{{
		Model:    "Test CPU",
		SpeedMHz: 2400,
		User:     0.1,
		Nice:     0,
		Sys:      0.05,
		Idle:     9,
		Irq:      0,
	}}}

	cpus, err := New(WithSource(src)).CPUInfo()
	require.NoError(t, err)

	expected := []CPUInfo{{
		Model: "Test CPU",
		Speed: 2400,
		Times: CPUTimes{User: 100, Nice: 0, Sys: 50, Idle: 9000, Irq: 0},
	}}
	assert.Equal(t, expected, cpus)
	assert.Equal(t, 1, src.cpuReleases)
}

func TestCPUInfoKeepsOrderAndOutlivesBuffer(t *testing.T) {
	src := &fakeSource{cpus: []RawCPU{
		{Model: "core0", SpeedMHz: 1000},
		{Model: "core1", SpeedMHz: 2000},
		{Model: "core2", SpeedMHz: 3000},
	}}

	cpus, err := New(WithSource(src)).CPUInfo()
	require.NoError(t, err)
	require.Len(t, cpus, 3)

	// The fake clears the records on release; the result must not see that.
	for i, c := range cpus {
		assert.Equal(t, fmt.Sprintf("core%d", i), c.Model)
		assert.Equal(t, int64(i+1)*1000, c.Speed)
	}
}

func TestCPUInfoIdempotentModelAndSpeed(t *testing.T) {
	src := &fakeSource{cpus: []RawCPU{
		{Model: "A", SpeedMHz: 1800, User: 1},
		{Model: "A", SpeedMHz: 1800, User: 2},
	}}
	in := New(WithSource(src))

	first, err := in.CPUInfo()
	require.NoError(t, err)
	src.cpus[0].User = 5
	second, err := in.CPUInfo()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Model, second[i].Model)
		assert.Equal(t, first[i].Speed, second[i].Speed)
	}
	assert.Equal(t, 2, src.cpuReleases)
}

func TestCPUInfoPlatformError(t *testing.T) {
	src := &fakeSource{cpuErr: fmt.Errorf("open /proc/stat: %w", syscall.EACCES)}

	cpus, err := New(WithSource(src)).CPUInfo()
	assert.Nil(t, cpus)

	var pe *PlatformError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, int(syscall.EACCES), pe.Code)
	assert.Equal(t, syscall.EACCES.Error(), pe.Message)
	assert.Zero(t, src.cpuReleases)
}

func TestLoadAvg(t *testing.T) {
	src := &fakeSource{avg: [3]float64{0.5, 0.25, 0.125}, avgOK: true}
	assert.Equal(t, LoadAverage{0.5, 0.25, 0.125}, New(WithSource(src)).LoadAvg())
}

func TestLoadAvgUnsupported(t *testing.T) {
	src := &fakeSource{}
	assert.Equal(t, LoadAverage{-1, -1, -1}, New(WithSource(src)).LoadAvg())
}

func TestNetworkInterfacesLoopback(t *testing.T) {
	src := &fakeSource{ifaces: []RawInterface{{
		Name:     "lo0",
		Address:  SockAddr{Family: FamilyIPv4, Addr: netip.MustParseAddr("127.0.0.1")},
		Netmask:  SockAddr{Family: FamilyIPv4, Addr: netip.MustParseAddr("255.0.0.0")},
		Internal: true,
	}}}

	ifaces, err := New(WithSource(src)).NetworkInterfaces()
	require.NoError(t, err)

	expected := []NetworkInterface{{
		Name:     "lo0",
		MAC:      "00:00:00:00:00:00",
		Address:  "127.0.0.1",
		Netmask:  "255.0.0.0",
		Internal: true,
	}}
	assert.Equal(t, expected, ifaces)
	assert.Nil(t, ifaces[0].ScopeID)
	assert.Equal(t, 1, src.ifaceReleases)
}

func TestNetworkInterfacesDualStack(t *testing.T) {
	mac := [6]byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}
	src := &fakeSource{ifaces: []RawInterface{
		{
			Name:     "eth0",
			PhysAddr: mac,
			Address:  SockAddr{Family: FamilyIPv4, Addr: netip.MustParseAddr("192.168.1.10")},
			Netmask:  SockAddr{Family: FamilyIPv4, Addr: netip.MustParseAddr("255.255.255.0")},
		},
		{
			Name:     "eth0",
			PhysAddr: mac,
			Address:  SockAddr{Family: FamilyIPv6, Addr: netip.MustParseAddr("fe80::21a:2bff:fe3c:4d5e"), ScopeID: 2},
			Netmask:  SockAddr{Family: FamilyIPv6, Addr: netip.MustParseAddr("ffff:ffff:ffff:ffff::")},
		},
	}}

	ifaces, err := New(WithSource(src)).NetworkInterfaces()
	require.NoError(t, err)
	require.Len(t, ifaces, 2)

	assert.Equal(t, "192.168.1.10", ifaces[0].Address)
	assert.Nil(t, ifaces[0].ScopeID)

	assert.Equal(t, "fe80::21a:2bff:fe3c:4d5e", ifaces[1].Address)
	assert.Equal(t, "ffff:ffff:ffff:ffff::", ifaces[1].Netmask)
	require.NotNil(t, ifaces[1].ScopeID)
	assert.Equal(t, uint32(2), *ifaces[1].ScopeID)

	for _, iface := range ifaces {
		assert.Equal(t, "00:1a:2b:3c:4d:5e", iface.MAC)
		assert.False(t, iface.Internal)
	}
}

// An address of a family we cannot render still yields an entry, with empty
// address and netmask and no scope.
func TestNetworkInterfacesUnknownFamily(t *testing.T) {
	src := &fakeSource{ifaces: []RawInterface{
		{Name: "pkt0", Address: SockAddr{}, Netmask: SockAddr{}},
	}}

	ifaces, err := New(WithSource(src)).NetworkInterfaces()
	require.NoError(t, err)
	require.Len(t, ifaces, 1)

	assert.Equal(t, "pkt0", ifaces[0].Name)
	assert.Empty(t, ifaces[0].Address)
	assert.Empty(t, ifaces[0].Netmask)
	assert.Nil(t, ifaces[0].ScopeID)
	assert.Equal(t, 1, src.ifaceReleases)
}

func TestNetworkInterfacesOutOfMemory(t *testing.T) {
	src := &fakeSource{ifaceErr: NewPlatformError(syscall.ENOMEM)}

	ifaces, err := New(WithSource(src)).NetworkInterfaces()
	assert.Nil(t, ifaces)

	var pe *PlatformError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, int(syscall.ENOMEM), pe.Code)
	assert.NotEmpty(t, pe.Message)
	assert.Zero(t, src.ifaceReleases)
}

func TestHostCPUInfo(t *testing.T) {
	in := New()

	first, err := in.CPUInfo()
	if err != nil {
		t.Skipf("cpu info unavailable on this host: %v", err)
	}
	require.NotEmpty(t, first)

	second, err := in.CPUInfo()
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Model, second[i].Model)
	}
}

func TestHostLoadAvg(t *testing.T) {
	avg := New().LoadAvg()
	assert.Len(t, avg, 3)
	for _, v := range avg {
		assert.True(t, v >= 0 || v == -1, "unexpected load value %v", v)
	}
}

func TestHostNetworkInterfaces(t *testing.T) {
	ifaces, err := New().NetworkInterfaces()
	if err != nil {
		t.Skipf("interfaces unavailable on this host: %v", err)
	}

	for _, iface := range ifaces {
		assert.Regexp(t, macPattern, iface.MAC, iface.Name)

		addr, err := netip.ParseAddr(iface.Address)
		require.NoError(t, err, iface.Address)
		mask, err := netip.ParseAddr(iface.Netmask)
		require.NoError(t, err, iface.Netmask)

		assert.Equal(t, addr.Is4(), mask.Is4(), "%s: %s/%s", iface.Name, iface.Address, iface.Netmask)
		if addr.Is6() {
			assert.NotNil(t, iface.ScopeID, iface.Name)
		} else {
			assert.Nil(t, iface.ScopeID, iface.Name)
		}
	}
}

func TestDefaultInspector(t *testing.T) {
	assert.Len(t, HostLoadAvg(), 3)
	assert.Same(t, defaultInspector(), defaultInspector())
}

func TestNilBufferYieldsEmptyResults(t *testing.T) {
	in := New(WithSource(&fakeSource{noBuffer: true}))

	cpus, err := in.CPUInfo()
	require.NoError(t, err)
	assert.NotNil(t, cpus)
	assert.Empty(t, cpus)

	ifaces, err := in.NetworkInterfaces()
	require.NoError(t, err)
	assert.NotNil(t, ifaces)
	assert.Empty(t, ifaces)
}
