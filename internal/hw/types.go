package hw

// Topology describes how logical CPUs are grouped into packages and cores.
type Topology struct {
	TotalCores   uint32       `json:"totalCores" yaml:"totalCores"`
	TotalThreads uint32       `json:"totalThreads" yaml:"totalThreads"`
	Packages     []CPUPackage `json:"packages" yaml:"packages"`
}

// CPUPackage is one physical processor package.
type CPUPackage struct {
	ID      int    `json:"id" yaml:"id"`
	Vendor  string `json:"vendor" yaml:"vendor"`
	Model   string `json:"model" yaml:"model"`
	Cores   int    `json:"cores" yaml:"cores"`
	Threads int    `json:"threads" yaml:"threads"`
}

// SystemInfo holds details about the host system.
type SystemInfo struct {
	Hostname      string `json:"hostname" yaml:"hostname"`
	OS            string `json:"os" yaml:"os"`
	Distro        string `json:"distro" yaml:"distro"`
	Version       string `json:"version" yaml:"version"`
	KernelVersion string `json:"kernelVersion" yaml:"kernelVersion"`
	Architecture  string `json:"architecture" yaml:"architecture"`
	Uptime        uint64 `json:"uptime" yaml:"uptime"`
}
