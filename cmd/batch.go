package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchInputFile    string
	batchOutputFile   string
	batchTemplateFile string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Design every beam listed in an Excel workbook",
	Long: `Read beams from an Excel workbook and design all of them in one run.

The first sheet is read. The first row must be the header:
  ` + strings.Join(batch.Header, " | ") + `

Each following row is one beam. Rows that fail to parse or design are
reported and carried into the results workbook with an ERROR status;
they never abort the batch.

Examples:
  # Design all beams and write a results workbook
  gobeam batch -i beams.xlsx -o results.xlsx

  # Write an empty input template to get started
  gobeam batch --template beams.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInputFile, "input", "i", "", "Input workbook (xlsx)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "output", "o", "results.xlsx", "Results workbook (xlsx)")
	batchCmd.Flags().StringVar(&batchTemplateFile, "template", "", "Write an empty input template and exit")
}

func runBatch(cmd *cobra.Command, args []string) {
	if batchTemplateFile != "" {
		if err := writeWorkbook(batchTemplateFile, batch.WriteTemplate); err != nil {
			fmt.Printf("Error writing template: %v\n", err)
			return
		}
		fmt.Printf("Template written to: %s\n", batchTemplateFile)
		return
	}

	if batchInputFile == "" {
		fmt.Println("Error: Please provide an input workbook with -i, or --template to create one.")
		return
	}

	f, err := os.Open(batchInputFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	rows, err := batch.Process(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BATCH BEAM DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Row\tBeam Type\tMu (kN·m)\tAs (mm²)\tφVc (kN)\tStatus\n")
	fmt.Fprintf(w, "  ───\t─────────\t─────────\t────────\t────────\t──────\n")

	failed := 0
	for _, row := range rows {
		if row.Err != nil {
			failed++
			fmt.Fprintf(w, "  %d\t─\t─\t─\t─\tERROR: %v\n", row.Line, row.Err)
			continue
		}
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
			row.Line, row.Beam.Variant, row.Result.Mu, row.Result.As, row.Result.PhiVc, row.Result.ShearStatus)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Designed %d of %d beams (%d failed).\n", len(rows)-failed, len(rows), failed)
	fmt.Println()

	if err := writeWorkbook(batchOutputFile, func(out io.Writer) error {
		return batch.WriteResults(rows, out)
	}); err != nil {
		fmt.Printf("Error writing results: %v\n", err)
		return
	}
	fmt.Printf("Results written to: %s\n", batchOutputFile)
}

func writeWorkbook(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
