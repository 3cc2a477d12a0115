package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

// ReturnsClient defines the API operations needed by the returns service.
type ReturnsClient interface {
	ListCurrentRecords(ctx context.Context) ([]model.CheckoutRecord, error)
	ReturnRecord(ctx context.Context, recordID int64, payload checkoutclient.ReturnPayload) (*model.CheckoutRecord, error)
}

// UserRecordsClient defines the API operation for a user's own checkouts.
type UserRecordsClient interface {
	ListUserCurrentRecords(ctx context.Context, userID int64) ([]model.CheckoutRecord, error)
}

// CheckedOutView is the display model for one open checkout record.
type CheckedOutView struct {
	model.CheckoutRecord
	// Overdue is set when the expected return date lies strictly in the
	// past. Overdue records stay returnable.
	Overdue bool
}

// LoadCheckedOut fetches all open checkout records, flagging overdue ones.
func LoadCheckedOut(ctx context.Context, client ReturnsClient, clk clock.Clock, logger *zap.Logger, user *model.User) ([]CheckedOutView, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if !user.Role.IsManager() {
		return nil, ErrManagerOnly
	}

	logger.Debug("Fetching open checkout records")
	records, err := client.ListCurrentRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checked out items: %w", err)
	}

	return buildCheckedOutViews(records, clk), nil
}

// LoadMyCheckouts fetches the logged-in user's own open records.
func LoadMyCheckouts(ctx context.Context, client UserRecordsClient, clk clock.Clock, logger *zap.Logger, user *model.User) ([]CheckedOutView, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}

	logger.Debug("Fetching own checkout records", zap.Int64("user_id", user.ID))
	records, err := client.ListUserCurrentRecords(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checked out items: %w", err)
	}

	return buildCheckedOutViews(records, clk), nil
}

func buildCheckedOutViews(records []model.CheckoutRecord, clk clock.Clock) []CheckedOutView {
	now := clk.Now()
	views := make([]CheckedOutView, 0, len(records))
	for _, record := range records {
		views = append(views, CheckedOutView{
			CheckoutRecord: record,
			Overdue:        record.ExpectedReturnDate.Time.Before(now),
		})
	}
	return views
}

// SubmitReturn closes an open checkout record. Condition is mandatory;
// empty notes default to "Equipment returned".
func SubmitReturn(ctx context.Context, client ReturnsClient, logger *zap.Logger, manager *model.User, recordID int64, condition string, notes string) (*model.CheckoutRecord, error) {
	if manager == nil {
		return nil, ErrLoginRequired
	}
	if !manager.Role.IsManager() {
		return nil, ErrManagerOnly
	}
	parsed, ok := model.ParseCondition(condition)
	if !ok {
		return nil, fmt.Errorf("please select the equipment condition (NEW, EXCELLENT, GOOD, FAIR, POOR or DAMAGED)")
	}
	if notes == "" {
		notes = "Equipment returned"
	}

	logger.Info("Processing return",
		zap.Int64("record_id", recordID),
		zap.String("condition", string(parsed)))
	record, err := client.ReturnRecord(ctx, recordID, checkoutclient.ReturnPayload{
		ManagerID: manager.ID,
		Condition: parsed,
		Notes:     notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%s", checkoutclient.ServerMessage(err, "failed to process return"))
	}

	logger.Info("Return processed", zap.Int64("record_id", record.ID))
	return record, nil
}
