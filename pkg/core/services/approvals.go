package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

// ApprovalsClient defines the API operations needed by the approvals
// service.
type ApprovalsClient interface {
	ListRequests(ctx context.Context) ([]model.CheckoutRequest, error)
	ApproveRequest(ctx context.Context, requestID int64, payload checkoutclient.ApprovalPayload) (*model.CheckoutRequest, error)
	RejectRequest(ctx context.Context, requestID int64, payload checkoutclient.ApprovalPayload) (*model.CheckoutRequest, error)
	FulfillRequest(ctx context.Context, requestID int64, payload checkoutclient.FulfillmentPayload) ([]model.CheckoutRecord, error)
}

// FulfillView is an approved request awaiting hand-out, carrying the
// editable expected-return-date default.
type FulfillView struct {
	model.CheckoutRequest
	DefaultReturnDate model.Date
}

// ApprovalsBoard partitions the full request collection into the two
// actionable subsets. Terminal requests are not represented.
type ApprovalsBoard struct {
	Pending        []model.CheckoutRequest
	ReadyToFulfill []FulfillView
}

// LoadPendingApprovals fetches all requests and partitions them client-side
// into PENDING and APPROVED.
func LoadPendingApprovals(ctx context.Context, client ApprovalsClient, clk clock.Clock, logger *zap.Logger, user *model.User) (*ApprovalsBoard, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if !user.Role.IsManager() {
		return nil, ErrManagerOnly
	}

	logger.Debug("Fetching all checkout requests")
	requests, err := client.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	board := &ApprovalsBoard{}
	returnDate := defaultFutureDate(clk)
	for _, request := range requests {
		switch request.Status {
		case model.RequestPending:
			board.Pending = append(board.Pending, request)
		case model.RequestApproved:
			board.ReadyToFulfill = append(board.ReadyToFulfill, FulfillView{
				CheckoutRequest:   request,
				DefaultReturnDate: returnDate,
			})
		}
	}

	logger.Info("Loaded approvals",
		zap.Int("pending", len(board.Pending)),
		zap.Int("ready_to_fulfill", len(board.ReadyToFulfill)))
	return board, nil
}

// Approve transitions a pending request to APPROVED. Empty notes default
// to "Approved".
func Approve(ctx context.Context, client ApprovalsClient, logger *zap.Logger, approver *model.User, requestID int64, notes string) (*model.CheckoutRequest, error) {
	if approver == nil {
		return nil, ErrLoginRequired
	}
	if !approver.Role.IsManager() {
		return nil, ErrManagerOnly
	}
	if notes == "" {
		notes = "Approved"
	}

	logger.Info("Approving request", zap.Int64("request_id", requestID))
	request, err := client.ApproveRequest(ctx, requestID, checkoutclient.ApprovalPayload{
		ApproverID: approver.ID,
		Notes:      notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve request: %s", checkoutclient.ServerMessage(err, "unknown error"))
	}
	return request, nil
}

// Reject transitions a pending request to REJECTED. A rejection reason is
// mandatory and checked before any network call.
func Reject(ctx context.Context, client ApprovalsClient, logger *zap.Logger, approver *model.User, requestID int64, notes string) (*model.CheckoutRequest, error) {
	if approver == nil {
		return nil, ErrLoginRequired
	}
	if !approver.Role.IsManager() {
		return nil, ErrManagerOnly
	}
	if notes == "" {
		return nil, fmt.Errorf("please provide a reason for rejection")
	}

	logger.Info("Rejecting request", zap.Int64("request_id", requestID))
	request, err := client.RejectRequest(ctx, requestID, checkoutclient.ApprovalPayload{
		ApproverID: approver.ID,
		Notes:      notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject request: %s", checkoutclient.ServerMessage(err, "unknown error"))
	}
	return request, nil
}

// Fulfill hands out the equipment of an approved request. The server
// creates the checkout records and flips the equipment to CHECKED_OUT.
func Fulfill(ctx context.Context, client ApprovalsClient, logger *zap.Logger, manager *model.User, requestID int64, expectedReturn model.Date) ([]model.CheckoutRecord, error) {
	if manager == nil {
		return nil, ErrLoginRequired
	}
	if !manager.Role.IsManager() {
		return nil, ErrManagerOnly
	}
	if expectedReturn.IsZero() {
		return nil, fmt.Errorf("please select an expected return date")
	}

	logger.Info("Fulfilling request",
		zap.Int64("request_id", requestID),
		zap.String("expected_return", expectedReturn.String()))
	records, err := client.FulfillRequest(ctx, requestID, checkoutclient.FulfillmentPayload{
		ManagerID:          manager.ID,
		ExpectedReturnDate: expectedReturn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fulfill request: %s", checkoutclient.ServerMessage(err, "unknown error"))
	}

	logger.Info("Request fulfilled", zap.Int("records_created", len(records)))
	return records, nil
}
