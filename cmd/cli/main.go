package main

import (
	"fmt"
	"os"

	"github.com/hiveden/hostinfo/internal/config"
	"github.com/hiveden/hostinfo/internal/hw"
	"github.com/hiveden/hostinfo/internal/logging"
	"github.com/hiveden/hostinfo/internal/osinfo"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg       *config.Config
	inspector *osinfo.Inspector
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "hostinfo",
		Short:         "Query CPU, load average and network interface information",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			inspector = osinfo.New(osinfo.WithLogger(logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "Output format: text, yaml or json")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(buildCPUsCommand())
	rootCmd.AddCommand(buildLoadAvgCommand())
	rootCmd.AddCommand(buildInterfacesCommand())
	rootCmd.AddCommand(buildSystemCommand())
	rootCmd.AddCommand(buildTopologyCommand())

	return rootCmd
}

func buildCPUsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cpus",
		Short: "Show per-core CPU model, speed and times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cpus, err := inspector.CPUInfo()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, cpus, printCPUs)
		},
	}
}

func buildLoadAvgCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loadavg",
		Short: "Show the 1, 5 and 15 minute load averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), cfg.Output, inspector.LoadAvg(), printLoadAvg)
		},
	}
}

func buildInterfacesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "Show network interface addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ifaces, err := inspector.NetworkInterfaces()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, ifaces, printInterfaces)
		},
	}
}

func buildSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "system",
		Short: "Show host name, OS, kernel and uptime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := hw.GetSystemInfo()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, info, printSystemInfo)
		},
	}
}

func buildTopologyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Show CPU packages, cores and threads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, err := hw.GetTopology()
			if err != nil {
				return fmt.Errorf("topology: %w", err)
			}
			return render(cmd.OutOrStdout(), cfg.Output, topo, printTopology)
		},
	}
}
