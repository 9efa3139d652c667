package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/paper"
)

// papersCommand creates the papers command for listing supported sizes.
func (c *CLI) papersCommand() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "papers",
		Short: "List supported paper sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := paper.ParseUnit(unit)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Paper sizes"))
			for _, s := range paper.List() {
				w := paper.Convert(s.Width, paper.Millimeter, u)
				h := paper.Convert(s.Height, paper.Millimeter, u)
				printKeyValue(s.Name, fmt.Sprintf("%.1f x %.1f %s", w, h, u))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "mm", "measurement unit: mm (default), cm, in, pt, px")

	return cmd
}
