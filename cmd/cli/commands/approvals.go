package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/core/services"
)

// ApprovalsCmd creates the approvals command
func ApprovalsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approvals",
		Short: "List pending and ready-to-fulfill requests (manager only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showApprovals(app)
		},
	}
}

func showApprovals(app *AppContext) error {
	board, err := services.LoadPendingApprovals(app.Ctx, app.Client, app.Clock, app.Logger, app.Session.CurrentUser())
	if err != nil {
		return err
	}

	if len(board.Pending) == 0 && len(board.ReadyToFulfill) == 0 {
		fmt.Println("No pending or approved requests")
		return nil
	}

	if len(board.Pending) > 0 {
		fmt.Printf("\n%sPending Approval%s\n", colorBold, colorReset)
		for _, request := range board.Pending {
			fmt.Printf("\nRequest #%d  %s\n", request.ID, badge("warning", "PENDING"))
			fmt.Printf("  Requested by: %s (%s)\n", request.RequestedBy.FullName(), request.RequestedBy.Username)
			fmt.Printf("  Department:   %s\n", orNA(request.RequestedBy.Department))
			fmt.Printf("  Equipment:    %s\n", request.EquipmentNames())
			fmt.Printf("  Purpose:      %s\n", request.Purpose)
			fmt.Printf("  Needed by:    %s\n", orNA(request.NeededByDate.String()))
			fmt.Printf("  Actions:      approve %d | reject %d --notes <reason>\n", request.ID, request.ID)
		}
	}

	if len(board.ReadyToFulfill) > 0 {
		fmt.Printf("\n%sReady to Fulfill%s\n", colorBold, colorReset)
		for _, request := range board.ReadyToFulfill {
			approvedBy := "N/A"
			if request.ApprovedBy != nil {
				approvedBy = request.ApprovedBy.Username
			}
			fmt.Printf("\nRequest #%d  %s\n", request.ID, badge("success", "APPROVED"))
			fmt.Printf("  Requested by: %s\n", request.RequestedBy.FullName())
			fmt.Printf("  Equipment:    %s\n", request.EquipmentNames())
			fmt.Printf("  Approved by:  %s\n", approvedBy)
			if request.ApprovalNotes != "" {
				fmt.Printf("  Notes:        %s\n", request.ApprovalNotes)
			}
			fmt.Printf("  Action:       fulfill %d --return-date %s\n", request.ID, request.DefaultReturnDate)
		}
	}
	fmt.Println()
	return nil
}

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	var notes string
	var yes bool

	cmd := &cobra.Command{
		Use:   "approve <request_id>",
		Short: "Approve a pending checkout request (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("request_id must be a number: %w", err)
			}

			if !confirm(fmt.Sprintf("Approve request #%d?", requestID), yes) {
				fmt.Println("Cancelled")
				return nil
			}

			if _, err := services.Approve(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), requestID, notes); err != nil {
				return err
			}

			fmt.Printf("✓ Request #%d approved\n", requestID)
			return showApprovals(app)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Approval notes (default \"Approved\")")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// RejectCmd creates the reject command
func RejectCmd(app *AppContext) *cobra.Command {
	var notes string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reject <request_id>",
		Short: "Reject a pending checkout request (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("request_id must be a number: %w", err)
			}

			if !confirm(fmt.Sprintf("Reject request #%d?", requestID), yes) {
				fmt.Println("Cancelled")
				return nil
			}

			if _, err := services.Reject(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), requestID, notes); err != nil {
				return err
			}

			fmt.Printf("✓ Request #%d rejected\n", requestID)
			return showApprovals(app)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Rejection reason (required)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// FulfillCmd creates the fulfill command
func FulfillCmd(app *AppContext) *cobra.Command {
	var returnDate string
	var yes bool

	cmd := &cobra.Command{
		Use:   "fulfill <request_id>",
		Short: "Hand out the equipment of an approved request (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("request_id must be a number: %w", err)
			}

			expectedReturn := model.DateOf(app.Clock.Now().AddDate(0, 0, 7))
			if returnDate != "" {
				if expectedReturn, err = model.ParseDate(returnDate); err != nil {
					return err
				}
			}

			if !confirm(fmt.Sprintf("Hand out equipment for request #%d (return by %s)?", requestID, expectedReturn), yes) {
				fmt.Println("Cancelled")
				return nil
			}

			records, err := services.Fulfill(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), requestID, expectedReturn)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Equipment handed out - %d checkout record(s) created\n", len(records))
			return showApprovals(app)
		},
	}

	cmd.Flags().StringVar(&returnDate, "return-date", "", "Expected return date yyyy-MM-dd (default: 7 days from today)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
