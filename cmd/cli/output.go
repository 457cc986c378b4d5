package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hiveden/hostinfo/internal/hw"
	"github.com/hiveden/hostinfo/internal/osinfo"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"
)

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	internalColor = color.New(color.FgCyan)
)

// render writes v to w as YAML, JSON or, for "text", through printText.
func render[T any](w io.Writer, format string, v T, printText func(io.Writer, T)) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text":
		printText(w, v)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printCPUs(w io.Writer, cpus []osinfo.CPUInfo) {
	for i, c := range cpus {
		fmt.Fprintf(w, "CPU %d: Model: %s, Speed: %d MHz, User: %d, Nice: %d, Sys: %d, Idle: %d, Irq: %d\n",
			i, c.Model, c.Speed, c.Times.User, c.Times.Nice, c.Times.Sys, c.Times.Idle, c.Times.Irq)
	}
}

func printLoadAvg(w io.Writer, avg osinfo.LoadAverage) {
	fmt.Fprintf(w, "%.2f %.2f %.2f\n", avg[0], avg[1], avg[2])
}

func printInterfaces(w io.Writer, ifaces []osinfo.NetworkInterface) {
	for _, iface := range ifaces {
		line := fmt.Sprintf("%s: Address: %s, Netmask: %s, MAC: %s", iface.Name, iface.Address, iface.Netmask, iface.MAC)
		if iface.ScopeID != nil {
			line += fmt.Sprintf(", ScopeID: %d", *iface.ScopeID)
		}
		if iface.Internal {
			internalColor.Fprintln(w, line+" (internal)")
			continue
		}
		fmt.Fprintln(w, line)
	}
}

func printSystemInfo(w io.Writer, info *hw.SystemInfo) {
	fmt.Fprintf(w, "Hostname: %s\nOS: %s\nDistro: %s %s\nKernel: %s\nArchitecture: %s\nUptime: %ds\n",
		info.Hostname, info.OS, info.Distro, info.Version, info.KernelVersion, info.Architecture, info.Uptime)
}

func printTopology(w io.Writer, topo *hw.Topology) {
	fmt.Fprintf(w, "Cores: %d, Threads: %d\n", topo.TotalCores, topo.TotalThreads)
	for _, p := range topo.Packages {
		fmt.Fprintf(w, "Package %d: %s %s, Cores: %d, Threads: %d\n", p.ID, p.Vendor, p.Model, p.Cores, p.Threads)
	}
}

func printError(w io.Writer, err error) {
	var pe *osinfo.PlatformError
	if errors.As(err, &pe) {
		errorColor.Fprintf(w, "error: %s (code %d)\n", pe.Message, pe.Code)
		return
	}
	errorColor.Fprintf(w, "error: %v\n", err)
}
