package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	designType  string
	designUDL   float64
	designSpan  float64
	designWidth float64
	designDepth float64
	designFc    float64
	designFy    float64

	// Output options
	designShowDiagrams  bool
	designSchematicFile string
	designEnvelopeFile  string
	designReportFile    string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a reinforced concrete beam for flexure and shear",
	Long: `Design a rectangular reinforced concrete beam carrying a factored
uniformly distributed load.

The command computes the moment and shear envelope for the chosen beam
type, the required tension steel area (As), and checks the factored
shear against the concrete capacity.

Beam types: Simply Supported, Fixed End, Cantilever, Overhang.

Examples:
  # Design a simply supported beam
  gobeam design --type "Simply Supported" -w 30 -L 20 -b 300 -d 500 --fc 30 --fy 420

  # Cantilever with terminal diagrams
  gobeam design --type Cantilever -w 12 -L 4 --diagram

  # Export the diagrams and a PDF report
  gobeam design --type "Fixed End" --schematic beam.png --envelope envelope.png --report design.pdf`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	// Loading and geometry flags
	designCmd.Flags().StringVarP(&designType, "type", "t", "", "Beam type [required]")
	designCmd.Flags().Float64VarP(&designUDL, "udl", "w", 30, "Factored uniform load w (kN/m)")
	designCmd.Flags().Float64VarP(&designSpan, "span", "L", 20, "Beam span L (m)")
	designCmd.Flags().Float64VarP(&designWidth, "width", "b", 300, "Beam width b (mm)")
	designCmd.Flags().Float64VarP(&designDepth, "depth", "d", 500, "Effective depth d (mm)")

	// Material flags
	designCmd.Flags().Float64Var(&designFc, "fc", 30, "Concrete compressive strength f'c (MPa)")
	designCmd.Flags().Float64Var(&designFy, "fy", 420, "Steel yield strength fy (MPa)")

	designCmd.MarkFlagRequired("type")

	// Output options
	designCmd.Flags().BoolVar(&designShowDiagrams, "diagram", false, "Show ASCII schematic and force diagrams")
	designCmd.Flags().StringVar(&designSchematicFile, "schematic", "", "Export beam schematic to file (png, svg, pdf)")
	designCmd.Flags().StringVar(&designEnvelopeFile, "envelope", "", "Export shear and moment diagrams to file (png)")
	designCmd.Flags().StringVar(&designReportFile, "report", "", "Export full PDF design report to file")
}

func runDesign(cmd *cobra.Command, args []string) {
	variant, err := beam.ParseVariant(designType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b := beam.New(variant, designUDL, designSpan, designWidth, designDepth, designFc, designFy)
	result, err := b.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	env, err := b.Envelope()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          REINFORCED CONCRETE BEAM DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Type:\t%s\n", b.Variant)
	fmt.Fprintf(w, "  Uniform Load (w):\t%.2f kN/m\n", b.W)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", b.L)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", b.Width)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", b.EffectiveDepth)
	fmt.Fprintf(w, "  f'c:\t%.1f MPa\n", b.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", b.Fy)
	w.Flush()
	fmt.Println()

	// Envelope summary
	fmt.Println("FORCE ENVELOPE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Maximum Moment (Mu):\t%.2f kN·m\n", result.Mu)
	fmt.Fprintf(w, "  Maximum Shear (Vu):\t%.2f kN\n", result.Vu)
	w.Flush()
	fmt.Println()

	// Flexural design
	fmt.Println("FLEXURAL DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(diagram.SummaryBox("REQUIRED STEEL AREA", []string{
		fmt.Sprintf("As = %.2f mm²", result.As),
	}))

	// Shear design
	fmt.Println("SHEAR DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Factored Shear (Vu):\t%.2f kN\n", result.Vu)
	fmt.Fprintf(w, "  Concrete Capacity (φVc):\t%.2f kN\n", result.PhiVc)
	w.Flush()
	fmt.Println()

	if result.ShearStatus == beam.ShearSafe {
		fmt.Printf("  φVc = %.2f kN ≥ Vu = %.2f kN ✓\n", result.PhiVc, result.Vu)
	} else {
		fmt.Printf("  φVc = %.2f kN < Vu = %.2f kN\n", result.PhiVc, result.Vu)
	}
	fmt.Println()
	fmt.Println(diagram.SummaryBox("SHEAR CHECK", []string{
		fmt.Sprintf("Status: %s", result.ShearStatus),
	}))

	// Terminal diagrams if requested
	if designShowDiagrams {
		fmt.Println(diagram.ASCIISchematic(b.Variant))
		fmt.Println(diagram.ASCIIEnvelope(env))
	}

	// File exports if requested
	if designSchematicFile != "" {
		if err := diagram.ExportSchematic(b.Variant, designSchematicFile); err != nil {
			fmt.Printf("Error exporting schematic: %v\n", err)
		} else {
			fmt.Printf("Schematic exported to: %s\n", designSchematicFile)
		}
	}
	if designEnvelopeFile != "" {
		if err := diagram.ExportEnvelopeDiagrams(env, designEnvelopeFile); err != nil {
			fmt.Printf("Error exporting diagrams: %v\n", err)
		} else {
			fmt.Printf("Diagrams exported to: %s\n", designEnvelopeFile)
		}
	}
	if designReportFile != "" {
		if err := exportReport(report.Meta{}, b, designReportFile); err != nil {
			fmt.Printf("Error exporting report: %v\n", err)
		} else {
			fmt.Printf("Report exported to: %s\n", designReportFile)
		}
	}
}

func exportReport(meta report.Meta, b *beam.Beam, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := report.Generate(meta, b, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
