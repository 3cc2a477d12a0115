package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show equipment and request summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dashboard := services.LoadDashboard(app.Ctx, app.Client, app.Logger, app.Session.Active())

			fmt.Printf("\n%sCheckout Zone%s\n\n", colorBold, colorReset)
			fmt.Printf("  Available:        %s\n", badge("success", fmt.Sprint(dashboard.Available)))
			fmt.Printf("  Checked out:      %s\n", badge("warning", fmt.Sprint(dashboard.CheckedOut)))
			fmt.Printf("  Pending requests: %s\n\n", badge("warning", fmt.Sprint(dashboard.Pending)))
			return nil
		},
	}
}
