package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Envelope inputs
	envType string
	envUDL  float64
	envSpan float64

	// Output options
	envStations   int
	envShowASCII  bool
	envExportFile string
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Tabulate the shear and moment envelope along the span",
	Long: `Compute the shear force and bending moment at stations along the
beam and report the envelope maxima.

Examples:
  # Station table for a simply supported beam
  gobeam envelope --type "Simply Supported" -w 30 -L 20

  # Terminal charts
  gobeam envelope --type Cantilever -w 12 -L 4 --ascii

  # Export the stacked diagrams as PNG
  gobeam envelope --type Overhang -w 30 -L 20 -o envelope.png`,
	Run: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	// Loading flags
	envelopeCmd.Flags().StringVarP(&envType, "type", "t", "", "Beam type [required]")
	envelopeCmd.Flags().Float64VarP(&envUDL, "udl", "w", 30, "Factored uniform load w (kN/m)")
	envelopeCmd.Flags().Float64VarP(&envSpan, "span", "L", 20, "Beam span L (m)")

	envelopeCmd.MarkFlagRequired("type")

	// Output options
	envelopeCmd.Flags().IntVar(&envStations, "stations", 11, "Number of stations in the table")
	envelopeCmd.Flags().BoolVar(&envShowASCII, "ascii", false, "Show terminal charts of the diagrams")
	envelopeCmd.Flags().StringVarP(&envExportFile, "output", "o", "", "Export stacked diagrams to file (png)")
}

func runEnvelope(cmd *cobra.Command, args []string) {
	variant, err := beam.ParseVariant(envType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	env, err := beam.NewEnvelope(variant, envUDL, envSpan)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SHEAR AND MOMENT ENVELOPE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Type:\t%s\n", env.Variant)
	fmt.Fprintf(w, "  Uniform Load (w):\t%.2f kN/m\n", env.W)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", env.L)
	w.Flush()
	fmt.Println()

	fmt.Println("STATION TABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	xs, shears, moments := env.Sample(envStations)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (m)\tV (kN)\tM (kN·m)\n")
	fmt.Fprintf(w, "  ─────\t──────\t────────\n")
	for i := range xs {
		fmt.Fprintf(w, "  %.2f\t%.2f\t%.2f\n", xs[i], shears[i], moments[i])
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(diagram.SummaryBox("ENVELOPE MAXIMA", []string{
		fmt.Sprintf("Mu max = %.2f kN·m", env.MaxMoment()),
		fmt.Sprintf("Vu max = %.2f kN", env.MaxShear()),
	}))

	if envShowASCII {
		fmt.Println(diagram.ASCIIEnvelope(env))
	}

	if envExportFile != "" {
		if err := diagram.ExportEnvelopeDiagrams(env, envExportFile); err != nil {
			fmt.Printf("Error exporting diagrams: %v\n", err)
		} else {
			fmt.Printf("Diagrams exported to: %s\n", envExportFile)
		}
	}
}
