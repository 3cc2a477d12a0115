package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/services"
)

// CheckedOutCmd creates the checked-out command
func CheckedOutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checked-out",
		Short: "List equipment currently checked out (manager only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCheckedOut(app)
		},
	}
}

func showCheckedOut(app *AppContext) error {
	records, err := services.LoadCheckedOut(app.Ctx, app.Client, app.Clock, app.Logger, app.Session.CurrentUser())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No equipment currently checked out")
		return nil
	}

	for _, record := range records {
		renderRecord(record)
	}
	fmt.Println()
	return nil
}

func renderRecord(record services.CheckedOutView) {
	fmt.Printf("\n%s%s%s (record %d)\n", colorBold, record.Equipment.Name, colorReset, record.ID)
	fmt.Printf("  Checked out by: %s (%s)\n", record.User.FullName(), record.User.Username)
	fmt.Printf("  Department:     %s\n", orNA(record.User.Department))
	fmt.Printf("  Checkout date:  %s\n", record.CheckoutDate)
	fmt.Printf("  Expected back:  %s", record.ExpectedReturnDate)
	if record.Overdue {
		fmt.Printf("  %s", badge("danger", "OVERDUE"))
	}
	fmt.Println()
	fmt.Printf("  Condition:      %s\n", record.ConditionAtCheckout)
	if record.CheckedOutByManager != nil {
		fmt.Printf("  Handed out by:  %s\n", record.CheckedOutByManager.Username)
	}
}

// ReturnCmd creates the return command
func ReturnCmd(app *AppContext) *cobra.Command {
	var condition string
	var notes string
	var yes bool

	cmd := &cobra.Command{
		Use:   "return <record_id>",
		Short: "Process the return of a checked-out item (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("record_id must be a number: %w", err)
			}

			if !confirm(fmt.Sprintf("Process return of record #%d in condition %s?", recordID, condition), yes) {
				fmt.Println("Cancelled")
				return nil
			}

			record, err := services.SubmitReturn(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), recordID, condition, notes)
			if err != nil {
				return err
			}

			fmt.Printf("✓ %s returned\n", record.Equipment.Name)

			// Equipment flipped back to AVAILABLE server-side: re-fetch
			// the open records and the dependent views.
			if err := showCheckedOut(app); err != nil {
				return err
			}
			refreshCatalogAndDashboard(app)
			return nil
		},
	}

	cmd.Flags().StringVar(&condition, "condition", "", "Condition at return: NEW, EXCELLENT, GOOD, FAIR, POOR or DAMAGED (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Return notes (default \"Equipment returned\")")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
