package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gosaf/internal/catalog"
	"gosaf/internal/saf"
)

var modelShowFile string

var modelShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a model summary",
	Long: `Load a model file and print its members with resolved cross-section
geometry.

Examples:
  gosaf model show --file frame.json`,
	Run: runModelShow,
}

func init() {
	modelCmd.AddCommand(modelShowCmd)
	modelShowCmd.Flags().StringVarP(&modelShowFile, "file", "f", "", "Path to model JSON file [required]")
	modelShowCmd.MarkFlagRequired("file")
}

func runModelShow(cmd *cobra.Command, args []string) {
	m, err := saf.LoadFromFile(modelShowFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("  Model: %s\n", m.Name)
	if m.Description != "" {
		fmt.Printf("  %s\n", m.Description)
	}
	fmt.Println()

	fmt.Println("CROSS-SECTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tMATERIAL\tPROFILE\tAREA (mm²)")
	for _, cs := range m.CrossSections {
		p, err := catalog.Lookup(cs.Profile)
		if err != nil {
			fmt.Fprintf(w, "  %s\t%s\t%s\t?\n", cs.Name, cs.Material, cs.Profile)
			continue
		}
		pg, err := p.Polygon()
		if err != nil {
			fmt.Fprintf(w, "  %s\t%s\t%s\tinvalid\n", cs.Name, cs.Material, cs.Profile)
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.1f\n", cs.Name, cs.Material, cs.Profile, pg.Properties().Area)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("MEMBERS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tFROM\tTO\tCROSS-SECTION\tTYPE")
	for _, mb := range m.Members {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", mb.Name, mb.BegNode, mb.EndNode, mb.CrossSection, mb.Type)
	}
	w.Flush()
	fmt.Println()
}
