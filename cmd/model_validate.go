package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gosaf/internal/saf"
)

var modelValidateFile string

var modelValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an interchange model file",
	Long: `Check a model JSON file against the document schema, then verify
field values and cross-references (unique names, resolvable nodes,
materials and catalog profiles).

Examples:
  gosaf model validate --file frame.json
  gosaf model validate -f frame.json`,
	Run: runModelValidate,
}

func init() {
	modelCmd.AddCommand(modelValidateCmd)
	modelValidateCmd.Flags().StringVarP(&modelValidateFile, "file", "f", "", "Path to model JSON file [required]")
	modelValidateCmd.MarkFlagRequired("file")
}

func runModelValidate(cmd *cobra.Command, args []string) {
	m, err := saf.LoadFromFile(modelValidateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid model: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Model %q is valid: %d nodes, %d materials, %d cross-sections, %d members\n",
		m.Name, len(m.Nodes), len(m.Materials), len(m.CrossSections), len(m.Members))
}
