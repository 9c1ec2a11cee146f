package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/aci"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Unfactored uniform loads (kN/m)
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64

	// Options
	loadShowAll bool
	loadGravity bool
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Calculate the factored uniform load from load combinations",
	Long: `Calculate the factored uniform load (wu) from unfactored service
loads using strength design load combinations.

Provide service loads per load type and this command computes the
factored load for every applicable combination and reports the one
that governs. The governing wu is the value to feed into 'gobeam
design' as -w.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gobeam loads --dead 15 --live 10

  # With wind load
  gobeam loads --dead 15 --live 10 --wind 5

  # Show all combinations
  gobeam loads --dead 15 --live 10 --all`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Service load flags
	loadsCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Uniform dead load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Uniform live load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Uniform roof live load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Uniform wind load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Uniform earthquake load (kN/m)")
	loadsCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Uniform rain load (kN/m)")

	// Options
	loadsCmd.Flags().BoolVarP(&loadShowAll, "all", "a", false, "Show all load combination results")
	loadsCmd.Flags().BoolVarP(&loadGravity, "gravity", "g", false, "Use gravity-only combinations (1.4D and 1.2D+1.6L)")
}

func runLoads(cmd *cobra.Command, args []string) {
	loads := aci.ServiceLoads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
	}

	if loads.Zero() {
		fmt.Println("Error: Please provide at least one service load.")
		fmt.Println("Use 'gobeam loads --help' for usage information.")
		return
	}

	combinations := aci.LoadCombinations
	if loadGravity {
		combinations = aci.GravityCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FACTORED UNIFORM LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SERVICE LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loads.Live)
	}
	if loads.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", loads.Roof)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", loads.Earthquake)
	}
	if loads.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", loads.Rain)
	}
	w.Flush()
	fmt.Println()

	maxWu, governing := aci.Governing(loads, combinations)

	if loadShowAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318-19 Section 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			wu := combo.Factored(loads)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, wu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Println(diagram.SummaryBox("FACTORED LOAD", []string{
		fmt.Sprintf("wu = %.2f kN/m", maxWu),
	}))
	fmt.Println("  Use this as 'gobeam design -w' input.")
	fmt.Println()
}
