package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gosaf/internal/catalog"
)

var profileListFamily string

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List standard profiles in the catalog",
	Long: `List every catalog designation, optionally limited to one family.

Examples:
  gosaf profile list
  gosaf profile list --family UNP`,
	Run: runProfileList,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileListCmd.Flags().StringVarP(&profileListFamily, "family", "F", "", "Limit to one family (CHS, RHS, SHS, UNP, LNP, FL)")
}

func runProfileList(cmd *cobra.Command, args []string) {
	families := catalog.Families()
	if profileListFamily != "" {
		families = []catalog.Family{catalog.Family(profileListFamily)}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tDESIGNATION\tAREA (mm²)\tPERIMETER (mm)")
	for _, f := range families {
		for _, p := range catalog.ByFamily(f) {
			pg, err := p.Polygon()
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\tinvalid: %v\t\n", f, p.Designation(), err)
				continue
			}
			props := pg.Properties()
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\n", f, p.Designation(), props.Area, props.Perimeter)
		}
	}
	w.Flush()
}
