// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"port-proforma/api"
	"port-proforma/core/engine"
	"port-proforma/core/exchange"
	"port-proforma/core/output"
	"port-proforma/core/rates"
	"port-proforma/core/tariff"
	"port-proforma/internal/config"
	"port-proforma/internal/logging"
)

var (
	inputFile    string
	outputFormat string
	ratesFile    string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate port-call costs for a vessel",
	Long: `Compute an itemized proforma from a JSON call description.

The input file carries the vessel profile, exchange rates and option
flags:

  {
    "vessel": {
      "name": "MV SEA SPRINTER",
      "nrt": 2196, "grt": 5197, "gt": 5197,
      "flag": "foreign", "category": "other_cargo",
      "cargo_mt": 5520, "berth_days": 7, "anchorage_days": 0,
      "port": "MERSIN", "purpose": "discharging"
    },
    "rates": {"usd_to_eur": 1.1801, "usd_to_try": 34.50},
    "options": {"overtime": false}
  }

Examples:
  port-proforma estimate --input call.json
  port-proforma estimate --input call.json --format json
  port-proforma estimate --input call.json --rates rates.hcl`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON call description (required)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "HCL rates override file")
	estimateCmd.MarkFlagRequired("input")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var req api.EstimateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	profile, err := req.Vessel.Profile()
	if err != nil {
		return err
	}

	card, fx, err := loadCard(cfg, req.Rates)
	if err != nil {
		return err
	}

	logging.Info("computing proforma",
		zap.String("vessel", profile.Name),
		zap.String("port", string(profile.Port)),
		zap.String("rate_card", card.Version))

	proforma := engine.Build(profile, req.Options, fx, card)

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if err := formatter.Write(os.Stdout, proforma); err != nil {
		return err
	}

	if req.Waste != nil {
		excess := tariff.WasteExcessEUR(*req.Waste, profile.GRT, req.WasteWeekend, card)
		fmt.Printf("\nWaste excess estimate: %.2f EUR\n", excess)
	}

	return nil
}

// loadCard assembles the rate card and exchange rates from the default
// revision, the optional override file and the request, in that order.
func loadCard(cfg *config.Config, reqRates exchange.Rates) (rates.Card, exchange.Rates, error) {
	card := rates.Default()
	fx := exchange.Rates{
		USDToEUR: cfg.Rates.DefaultUSDToEUR,
		USDToTRY: cfg.Rates.DefaultUSDToTRY,
	}

	overridePath := ratesFile
	if overridePath == "" {
		overridePath = cfg.Rates.OverridesPath
	}
	if overridePath != "" {
		overrides, err := rates.LoadOverrides(overridePath)
		if err != nil {
			return rates.Card{}, exchange.Rates{}, err
		}
		card = overrides.Apply(card)
		if r := overrides.Rates(); r != nil {
			fx = *r
		}
	}

	// Rates supplied with the request win over file and config defaults
	if reqRates.Valid() {
		fx = reqRates
	}

	return card, fx, nil
}
