package cmd

import (
	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Interchange model validation and inspection",
	Long: `Work with structural-analysis interchange model files.

A model file is a JSON document with nodes, materials, cross-sections
and 1D members. Cross-sections reference catalog profile designations.

Subcommands:
  validate - Check a model file against the schema and its references
  show     - Print a model summary

Example JSON file structure:
{
  "name": "Portal frame",
  "nodes": [
    {"name": "N1", "x": 0, "y": 0, "z": 0},
    {"name": "N2", "x": 0, "y": 0, "z": 4}
  ],
  "materials": [
    {"name": "S235", "type": "steel", "e": 210000}
  ],
  "cross_sections": [
    {"name": "CS1", "material": "S235", "profile": "RHS 100x200x5"}
  ],
  "members": [
    {"name": "M1", "beg_node": "N1", "end_node": "N2",
     "cross_section": "CS1", "type": "column"}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(modelCmd)
}
