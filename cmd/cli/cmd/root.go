// Package cmd provides the CLI commands for port-proforma.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"port-proforma/internal/config"
	"port-proforma/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "port-proforma",
	Short: "Estimate port-call costs for a vessel",
	Long: `port-proforma computes an itemized port-call cost estimate (proforma)
for a vessel calling at a supported port, by evaluating the tariff rules
for pilotage, towage, mooring, berthing, anchorage, harbour dues, waste
handling and agency services against the vessel and voyage attributes.

Examples:
  port-proforma estimate --input call.json
  port-proforma estimate --input call.json --format json
  port-proforma rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.port-proforma.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(incidentalsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("port-proforma version 0.1.0")
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
