package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/export"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the equipment catalog to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := export.EquipmentToXLSX(app.Ctx, app.Client, app.Logger, output)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Exported %d items to %s\n", summary.Rows, summary.Path)
			fmt.Printf("  Available:   %d\n", summary.Available)
			fmt.Printf("  Checked out: %d\n", summary.CheckedOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "equipment.xlsx", "Output file path")

	return cmd
}
