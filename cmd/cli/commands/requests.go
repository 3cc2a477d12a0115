package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/core/services"
)

// RequestCmd creates the request command
func RequestCmd(app *AppContext) *cobra.Command {
	var purpose string
	var neededBy string

	cmd := &cobra.Command{
		Use:   "request <equipment_id>",
		Short: "Request checkout of an available equipment item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			equipmentID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("equipment_id must be a number: %w", err)
			}

			equipment, err := app.Client.GetEquipment(app.Ctx, equipmentID)
			if err != nil {
				return fmt.Errorf("failed to fetch equipment %d: %w", equipmentID, err)
			}

			form, err := services.NewRequestForm(app.Session.CurrentUser(), *equipment, app.Clock)
			if err != nil {
				return err
			}

			form.Purpose = purpose
			if neededBy != "" {
				date, err := model.ParseDate(neededBy)
				if err != nil {
					return err
				}
				form.NeededBy = date
			}
			if form.Purpose == "" {
				if form.Purpose, err = promptLine("Purpose"); err != nil {
					return err
				}
			}

			request, err := services.SubmitRequest(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), *form)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Request #%d submitted for %s (needed by %s)\n",
				request.ID, form.EquipmentName, form.NeededBy)

			// Mutation done: re-fetch the dependent views.
			refreshCatalogAndDashboard(app)
			return nil
		},
	}

	cmd.Flags().StringVar(&purpose, "purpose", "", "What the equipment is needed for (required)")
	cmd.Flags().StringVar(&neededBy, "needed-by", "", "Needed-by date yyyy-MM-dd (default: 7 days from today)")

	return cmd
}

// refreshCatalogAndDashboard re-fetches the views that depend on a
// successful mutation. Failures here only warn; the mutation already
// succeeded.
func refreshCatalogAndDashboard(app *AppContext) {
	dashboard := services.LoadDashboard(app.Ctx, app.Client, app.Logger, app.Session.Active())
	fmt.Printf("\nCatalog now: %d available, %d checked out, %d pending requests\n",
		dashboard.Available, dashboard.CheckedOut, dashboard.Pending)
}

// MyRequestsCmd creates the my-requests command
func MyRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "my-requests",
		Short: "List your own checkout requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := services.LoadMyRequests(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser())
			if err != nil {
				return err
			}

			if len(requests) == 0 {
				fmt.Println("No requests found")
				return nil
			}

			for _, request := range requests {
				fmt.Printf("\nRequest #%d  %s\n", request.ID, badge(request.StatusColor, string(request.Status)))
				fmt.Printf("  Equipment: %s\n", request.EquipmentNames())
				fmt.Printf("  Purpose:   %s\n", request.Purpose)
				fmt.Printf("  Needed by: %s\n", orNA(request.NeededByDate.String()))
				fmt.Printf("  Requested: %s\n", request.RequestedDate)
				if request.ApprovalNotes != "" {
					fmt.Printf("  Notes:     %s\n", request.ApprovalNotes)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

// MyCheckoutsCmd creates the my-checkouts command
func MyCheckoutsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "my-checkouts",
		Short: "List equipment currently checked out to you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := services.LoadMyCheckouts(app.Ctx, app.Client, app.Clock, app.Logger, app.Session.CurrentUser())
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("Nothing checked out")
				return nil
			}

			for _, record := range records {
				renderRecord(record)
			}
			fmt.Println()
			return nil
		},
	}
}
