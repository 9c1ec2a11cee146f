package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	reportType  string
	reportUDL   float64
	reportSpan  float64
	reportWidth float64
	reportDepth float64
	reportFc    float64
	reportFy    float64

	// Title block
	reportProject  string
	reportEngineer string
	reportTitle    string

	reportOutputFile string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF design report for a beam",
	Long: `Design a beam and write a complete PDF report: the title block,
input and result tables, the shear verdict, the beam schematic, and
the shear and moment diagrams.

Examples:
  # Report with a title block
  gobeam report --type "Simply Supported" -w 30 -L 20 --project "Warehouse B2" --engineer "A. Reyes"

  # Custom output file
  gobeam report --type Cantilever -w 12 -L 4 -o canopy.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	// Loading and geometry flags
	reportCmd.Flags().StringVarP(&reportType, "type", "t", "", "Beam type [required]")
	reportCmd.Flags().Float64VarP(&reportUDL, "udl", "w", 30, "Factored uniform load w (kN/m)")
	reportCmd.Flags().Float64VarP(&reportSpan, "span", "L", 20, "Beam span L (m)")
	reportCmd.Flags().Float64VarP(&reportWidth, "width", "b", 300, "Beam width b (mm)")
	reportCmd.Flags().Float64VarP(&reportDepth, "depth", "d", 500, "Effective depth d (mm)")
	reportCmd.Flags().Float64Var(&reportFc, "fc", 30, "Concrete compressive strength f'c (MPa)")
	reportCmd.Flags().Float64Var(&reportFy, "fy", 420, "Steel yield strength fy (MPa)")

	reportCmd.MarkFlagRequired("type")

	// Title block
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name for the title block")
	reportCmd.Flags().StringVar(&reportEngineer, "engineer", "", "Engineer name for the title block")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")

	reportCmd.Flags().StringVarP(&reportOutputFile, "output", "o", "design.pdf", "Output PDF file")
}

func runReport(cmd *cobra.Command, args []string) {
	variant, err := beam.ParseVariant(reportType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b := beam.New(variant, reportUDL, reportSpan, reportWidth, reportDepth, reportFc, reportFy)
	meta := report.Meta{
		Project:  reportProject,
		Engineer: reportEngineer,
		Title:    reportTitle,
	}

	if err := exportReport(meta, b, reportOutputFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", reportOutputFile)
}
