package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ThemeCmd creates the theme command
func ThemeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the persisted UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(app.Session.Theme())
				return nil
			}
			if err := app.Session.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Theme set to %s\n", args[0])
			return nil
		},
	}
}
