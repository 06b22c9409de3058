package cmd

import (
	"github.com/spf13/cobra"

	"gosaf/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Standard profile lookup, properties, corrosion and plots",
	Long: `Work with parametric cross-section profiles.

Profiles are resolved from the built-in catalogs by designation
(e.g. "CHS 88.9x3.2", "RHS 100x200x5", "UNP 200x75", "LNP 50x50x5").

Subcommands:
  list     - List catalog designations
  show     - Print dimensions and derived section quantities
  corrode  - Derive a profile with uniform material loss
  plot     - Export a cross-section diagram`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

// corrosionFromFlags assembles the corrosion spec shared by the profile
// subcommands.
func corrosionFromFlags(outside, inside float64) profile.Corrosion {
	return profile.Corrosion{Outside: outside, Inside: inside}
}
