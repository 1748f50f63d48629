// Package cmd - rates command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"port-proforma/core/rates"
	"port-proforma/core/types"
)

// ratesCmd prints the active tariff revision
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the active tariff revision",
	Long:  `Print the rate card version and its headline constants.`,
	RunE:  runRates,
}

func runRates(cmd *cobra.Command, args []string) error {
	card := rates.Default()

	fmt.Printf("Tariff revision %s\n\n", card.Version)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tRATE")
	fmt.Fprintf(tw, "Berthing (per 1000 GT, daily)\t%.2f USD\n", card.BerthingPer1000USD)
	fmt.Fprintf(tw, "Anchorage (per GRT-day, foreign)\t%.4f USD\n", card.AnchorageForeignRate)
	fmt.Fprintf(tw, "Sanitary dues (per NRT)\t%.2f TL\n", card.SanitaryPerNRTTL)
	fmt.Fprintf(tw, "Light dues\t%.2f USD\n", card.LightDuesUSD)
	fmt.Fprintf(tw, "Chamber of shipping fee\t%.2f USD\n", card.ChamberShippingFeeUSD)
	fmt.Fprintf(tw, "Garbage (compulsory)\t%.2f EUR\n", card.GarbageFixedEUR)
	fmt.Fprintln(tw, "\t")

	fmt.Fprintln(tw, "PILOTAGE (T.1.1)\tBASE / PER 1000 GRT")
	for _, cat := range []types.VesselCategory{
		types.CategoryCabotage,
		types.CategoryPassengerFerryRoro,
		types.CategoryContainer,
		types.CategoryOtherCargo,
	} {
		r := card.Pilotage[cat]
		fmt.Fprintf(tw, "%s\t%.2f / %.2f USD\n", cat, r.Base, r.Per1000)
	}
	fmt.Fprintln(tw, "\t")

	fmt.Fprintln(tw, "PORT\tIN/OUT CHARGE")
	for _, p := range types.Ports() {
		fmt.Fprintf(tw, "%s\t%.2f USD\n", p, card.PortInOut(p))
	}

	return tw.Flush()
}
