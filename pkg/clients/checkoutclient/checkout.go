package checkoutclient

import (
	"context"
	"fmt"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// CheckoutRequestPayload is the POST /api/checkout/request body.
type CheckoutRequestPayload struct {
	UserID       int64      `json:"userId"`
	EquipmentIDs []int64    `json:"equipmentIds"`
	Purpose      string     `json:"purpose"`
	NeededByDate model.Date `json:"neededByDate"`
}

// ApprovalPayload is the body for approve and reject transitions.
type ApprovalPayload struct {
	ApproverID int64  `json:"approverId"`
	Notes      string `json:"notes"`
}

// FulfillmentPayload is the POST .../fulfill body.
type FulfillmentPayload struct {
	ManagerID          int64      `json:"managerId"`
	ExpectedReturnDate model.Date `json:"expectedReturnDate"`
}

// ReturnPayload is the POST .../return body.
type ReturnPayload struct {
	ManagerID int64                    `json:"managerId"`
	Condition model.EquipmentCondition `json:"condition"`
	Notes     string                   `json:"notes"`
}

// CreateRequest submits a new checkout request.
func (c *Client) CreateRequest(ctx context.Context, payload CheckoutRequestPayload) (*model.CheckoutRequest, error) {
	var request model.CheckoutRequest
	if err := c.post(ctx, "/api/checkout/request", payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListRequests fetches all checkout requests. Managers see everything;
// the approvals and dashboard views both read from this one endpoint.
func (c *Client) ListRequests(ctx context.Context) ([]model.CheckoutRequest, error) {
	var requests []model.CheckoutRequest
	if err := c.get(ctx, "/api/checkout/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListUserRequests fetches one user's own requests.
func (c *Client) ListUserRequests(ctx context.Context, userID int64) ([]model.CheckoutRequest, error) {
	var requests []model.CheckoutRequest
	if err := c.get(ctx, fmt.Sprintf("/api/checkout/requests/user/%d", userID), &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ApproveRequest transitions a PENDING request to APPROVED.
func (c *Client) ApproveRequest(ctx context.Context, requestID int64, payload ApprovalPayload) (*model.CheckoutRequest, error) {
	var request model.CheckoutRequest
	if err := c.post(ctx, fmt.Sprintf("/api/checkout/requests/%d/approve", requestID), payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// RejectRequest transitions a PENDING request to REJECTED.
func (c *Client) RejectRequest(ctx context.Context, requestID int64, payload ApprovalPayload) (*model.CheckoutRequest, error) {
	var request model.CheckoutRequest
	if err := c.post(ctx, fmt.Sprintf("/api/checkout/requests/%d/reject", requestID), payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// FulfillRequest hands out the equipment of an APPROVED request. The server
// creates one checkout record per item and marks the request COMPLETED.
func (c *Client) FulfillRequest(ctx context.Context, requestID int64, payload FulfillmentPayload) ([]model.CheckoutRecord, error) {
	var records []model.CheckoutRecord
	if err := c.post(ctx, fmt.Sprintf("/api/checkout/requests/%d/fulfill", requestID), payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListCurrentRecords fetches all open checkout records.
func (c *Client) ListCurrentRecords(ctx context.Context) ([]model.CheckoutRecord, error) {
	var records []model.CheckoutRecord
	if err := c.get(ctx, "/api/checkout/records/current", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListUserCurrentRecords fetches one user's open checkout records.
func (c *Client) ListUserCurrentRecords(ctx context.Context, userID int64) ([]model.CheckoutRecord, error) {
	var records []model.CheckoutRecord
	if err := c.get(ctx, fmt.Sprintf("/api/checkout/records/user/%d/current", userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReturnRecord closes an open checkout record with the returned condition.
func (c *Client) ReturnRecord(ctx context.Context, recordID int64, payload ReturnPayload) (*model.CheckoutRecord, error) {
	var record model.CheckoutRecord
	if err := c.post(ctx, fmt.Sprintf("/api/checkout/records/%d/return", recordID), payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
