package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

// RequestClient defines the API operations needed by the request service.
type RequestClient interface {
	CreateRequest(ctx context.Context, payload checkoutclient.CheckoutRequestPayload) (*model.CheckoutRequest, error)
	ListUserRequests(ctx context.Context, userID int64) ([]model.CheckoutRequest, error)
}

// RequestForm is the capture form for a new checkout request, pre-filled
// with the equipment identity and a default needed-by date.
type RequestForm struct {
	EquipmentID   int64
	EquipmentName string
	Purpose       string
	NeededBy      model.Date
}

// NewRequestForm starts a checkout request for an item. Requires an active
// session and an AVAILABLE item; defaults the needed-by date to a week out.
func NewRequestForm(user *model.User, equipment model.Equipment, clk clock.Clock) (*RequestForm, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if equipment.Status != model.StatusAvailable {
		return nil, fmt.Errorf("equipment %s is not available", equipment.Name)
	}
	return &RequestForm{
		EquipmentID:   equipment.ID,
		EquipmentName: equipment.Name,
		NeededBy:      defaultFutureDate(clk),
	}, nil
}

// SubmitRequest validates the form and submits it. Both purpose and the
// needed-by date are required before any network call goes out.
func SubmitRequest(ctx context.Context, client RequestClient, logger *zap.Logger, user *model.User, form RequestForm) (*model.CheckoutRequest, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if form.Purpose == "" || form.NeededBy.IsZero() {
		return nil, fmt.Errorf("please fill in all fields")
	}

	logger.Info("Submitting checkout request",
		zap.Int64("equipment_id", form.EquipmentID),
		zap.String("needed_by", form.NeededBy.String()))

	request, err := client.CreateRequest(ctx, checkoutclient.CheckoutRequestPayload{
		UserID:       user.ID,
		EquipmentIDs: []int64{form.EquipmentID},
		Purpose:      form.Purpose,
		NeededByDate: form.NeededBy,
	})
	if err != nil {
		return nil, fmt.Errorf("%s", checkoutclient.ServerMessage(err, "failed to submit request"))
	}

	logger.Info("Request submitted", zap.Int64("request_id", request.ID))
	return request, nil
}

// RequestView is the display model for one of the user's own requests.
type RequestView struct {
	model.CheckoutRequest
	StatusColor string
}

// LoadMyRequests fetches the user's own requests in server order, colored
// by status.
func LoadMyRequests(ctx context.Context, client RequestClient, logger *zap.Logger, user *model.User) ([]RequestView, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}

	logger.Debug("Fetching own requests", zap.Int64("user_id", user.ID))
	requests, err := client.ListUserRequests(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	views := make([]RequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, RequestView{
			CheckoutRequest: request,
			StatusColor:     statusColor(request.Status),
		})
	}
	return views, nil
}
