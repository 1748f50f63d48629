// Package cmd - incidentals command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"port-proforma/core/exchange"
	"port-proforma/core/rates"
	"port-proforma/core/tariff"
	"port-proforma/internal/config"
)

var (
	incNRT      float64
	incGRT      float64
	incValue    float64
	incSparesKg float64
	incCrew     int
	incPatients int
	incAdvance  float64
)

// incidentalsCmd prices the incidental services that fall outside the
// per-call proforma
var incidentalsCmd = &cobra.Command{
	Use:   "incidentals",
	Short: "Price incidental services for a vessel",
	Long: `Print the incidental service fees (tariff 8 and related items)
for a vessel: ordino, auto service, stamp duties, owner's-account
clearances, crew changes, medical attendance and cash-advance
commission.

Examples:
  port-proforma incidentals --nrt 2196 --grt 5197
  port-proforma incidentals --grt 5197 --crew 4 --advance 10000`,
	RunE: runIncidentals,
}

func init() {
	incidentalsCmd.Flags().Float64Var(&incNRT, "nrt", 0, "net registered tonnage")
	incidentalsCmd.Flags().Float64Var(&incGRT, "grt", 0, "gross registered tonnage")
	incidentalsCmd.Flags().Float64Var(&incValue, "value", 0, "owner's-account goods value in EUR")
	incidentalsCmd.Flags().Float64Var(&incSparesKg, "spares-kg", 0, "spare-parts weight in kg")
	incidentalsCmd.Flags().IntVar(&incCrew, "crew", 0, "crew members joining or leaving")
	incidentalsCmd.Flags().IntVar(&incPatients, "patients", 0, "patients attended")
	incidentalsCmd.Flags().Float64Var(&incAdvance, "advance", 0, "cash advance to the master in EUR")
}

func runIncidentals(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	card := rates.Default()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tFEE")

	if incNRT > 0 {
		harbourUSD := exchange.TRYToUSD(tariff.HarbourMasterTL(incNRT, false, card), cfg.Rates.DefaultUSDToTRY)
		fmt.Fprintf(tw, "Ordino\t%.2f USD\n", tariff.OrdinoUSD(harbourUSD))
	}
	if incGRT > 0 {
		fmt.Fprintf(tw, "Auto service\t%.2f USD\n", tariff.AutoServiceUSD(incGRT, card))
		fmt.Fprintf(tw, "Waste (fixed bracket)\t%.2f EUR\n", tariff.WasteFixedEUR(incGRT, card))
	}
	if incValue > 0 {
		fmt.Fprintf(tw, "Owner's-account clearance\t%.2f EUR\n", tariff.VOAEUR(incValue, card))
	}
	if incSparesKg > 0 {
		fmt.Fprintf(tw, "Spare-parts clearance\t%.2f EUR\n", tariff.SparePartsEUR(incSparesKg, card))
	}
	if incCrew > 0 {
		fmt.Fprintf(tw, "Crew change (%d persons)\t%.2f EUR\n", incCrew, tariff.CrewChangeEUR(incCrew, card))
	}
	if incPatients > 0 {
		fmt.Fprintf(tw, "Medical attendance (%d patients)\t%.2f EUR\n", incPatients, tariff.MedicalEUR(incPatients, card))
	}
	if incAdvance > 0 {
		fmt.Fprintf(tw, "Cash-advance commission\t%.2f EUR\n", tariff.CaptainAdvanceEUR(incAdvance, card))
	}

	duties := tariff.StampDutiesTL(card)
	fmt.Fprintf(tw, "Stamp duty, summary declaration\t%.2f TL\n", duties.SummaryDeclarationTL)
	fmt.Fprintf(tw, "Stamp duty, ordino\t%.2f TL\n", duties.OrdinoTL)
	fmt.Fprintf(tw, "Stamp duty, port request\t%.2f TL\n", duties.PortRequestTL)
	fmt.Fprintf(tw, "Bunker supervision\t%.2f EUR\n", card.BunkerSupervisionEUR)
	fmt.Fprintf(tw, "Transit visa\t%.2f TL\n", card.TransitVisaTL)

	return tw.Flush()
}
