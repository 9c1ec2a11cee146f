package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Reinforced Concrete Beam Design Calculator",
	Long: `gobeam - Go Reinforced Concrete Beam Designer

A CLI tool for the flexural and shear design of reinforced concrete
beams carrying a uniformly distributed load.

This tool helps structural engineers perform:
  - Flexural design (required steel area As)
  - Shear design (concrete capacity check against Vu)
  - Shear force and bending moment diagrams
  - Beam schematic drawings
  - Factored load combinations
  - Batch design from spreadsheets and PDF reports

Supported beam types: Simply Supported, Fixed End, Cantilever, Overhang.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Beam Designer                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the flexural and shear design of reinforced")
		fmt.Println("  concrete beams under a uniformly distributed load.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Design of simply supported, fixed end, cantilever and overhang beams")
		fmt.Println("    • Shear force and bending moment diagrams (terminal and image)")
		fmt.Println("    • Factored load calculation from service load combinations")
		fmt.Println("    • Batch design from Excel workbooks")
		fmt.Println("    • PDF design reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
