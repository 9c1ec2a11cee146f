package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	schematicType       string
	schematicExportFile string
)

var schematicCmd = &cobra.Command{
	Use:   "schematic",
	Short: "Draw the support-condition sketch for a beam type",
	Long: `Draw the schematic of a beam and its supports: a triangle for the
pin, a circle for the roller, and a solid wall for fixed ends.

Examples:
  # Terminal sketch
  gobeam schematic --type "Simply Supported"

  # Export as image
  gobeam schematic --type Cantilever -o beam.png`,
	Run: runSchematic,
}

func init() {
	rootCmd.AddCommand(schematicCmd)

	schematicCmd.Flags().StringVarP(&schematicType, "type", "t", "", "Beam type [required]")
	schematicCmd.Flags().StringVarP(&schematicExportFile, "output", "o", "", "Export schematic to file (png, svg, pdf)")

	schematicCmd.MarkFlagRequired("type")
}

func runSchematic(cmd *cobra.Command, args []string) {
	variant, err := beam.ParseVariant(schematicType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("\n  %s Beam\n", variant)
	fmt.Println(diagram.ASCIISchematic(variant))

	if schematicExportFile != "" {
		if err := diagram.ExportSchematic(variant, schematicExportFile); err != nil {
			fmt.Printf("Error exporting schematic: %v\n", err)
		} else {
			fmt.Printf("Schematic exported to: %s\n", schematicExportFile)
		}
	}
}
