package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

type fakeReturnsClient struct {
	listCalls     int
	userListCalls int
	returnCalls   int
	records       []model.CheckoutRecord
	lastUserID    int64
	lastPayload   checkoutclient.ReturnPayload
	returnErr     error
}

func (f *fakeReturnsClient) ListCurrentRecords(ctx context.Context) ([]model.CheckoutRecord, error) {
	f.listCalls++
	return f.records, nil
}

func (f *fakeReturnsClient) ListUserCurrentRecords(ctx context.Context, userID int64) ([]model.CheckoutRecord, error) {
	f.userListCalls++
	f.lastUserID = userID
	return f.records, nil
}

func (f *fakeReturnsClient) ReturnRecord(ctx context.Context, recordID int64, payload checkoutclient.ReturnPayload) (*model.CheckoutRecord, error) {
	f.returnCalls++
	f.lastPayload = payload
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	returned := model.NewDate(2025, time.June, 2)
	return &model.CheckoutRecord{ID: recordID, ActualReturnDate: &returned}, nil
}

func TestLoadCheckedOutFlagsOverdueStrictly(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	client := &fakeReturnsClient{records: []model.CheckoutRecord{
		{ID: 1, ExpectedReturnDate: model.NewDate(2025, time.May, 30)},
		{ID: 2, ExpectedReturnDate: model.NewDate(2025, time.June, 5)},
	}}

	views, err := LoadCheckedOut(context.Background(), client, clock.NewMockClock(now), zap.NewNop(), manager())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].Overdue)
	assert.False(t, views[1].Overdue)
}

func TestLoadCheckedOutGatesByRole(t *testing.T) {
	client := &fakeReturnsClient{}
	clk := clock.NewMockClock(time.Now())

	_, err := LoadCheckedOut(context.Background(), client, clk, zap.NewNop(), nil)
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = LoadCheckedOut(context.Background(), client, clk, zap.NewNop(), &model.User{ID: 9, Role: model.RoleUser})
	assert.ErrorIs(t, err, ErrManagerOnly)
	assert.Zero(t, client.listCalls)
}

func TestLoadMyCheckoutsUsesOwnRecords(t *testing.T) {
	client := &fakeReturnsClient{records: []model.CheckoutRecord{
		{ID: 3, ExpectedReturnDate: model.NewDate(2025, time.June, 5)},
	}}
	clk := clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	user := &model.User{ID: 11, Role: model.RoleUser}

	views, err := LoadMyCheckouts(context.Background(), client, clk, zap.NewNop(), user)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(11), client.lastUserID)
	assert.False(t, views[0].Overdue)
}

func TestSubmitReturnRequiresValidCondition(t *testing.T) {
	client := &fakeReturnsClient{}

	_, err := SubmitReturn(context.Background(), client, zap.NewNop(), manager(), 4, "", "")
	require.Error(t, err)
	_, err = SubmitReturn(context.Background(), client, zap.NewNop(), manager(), 4, "PRISTINE", "")
	require.Error(t, err)
	assert.Zero(t, client.returnCalls)
}

func TestSubmitReturnDefaultsNotes(t *testing.T) {
	client := &fakeReturnsClient{}

	record, err := SubmitReturn(context.Background(), client, zap.NewNop(), manager(), 4, "GOOD", "")
	require.NoError(t, err)

	assert.Equal(t, model.ConditionGood, client.lastPayload.Condition)
	assert.Equal(t, "Equipment returned", client.lastPayload.Notes)
	assert.Equal(t, int64(2), client.lastPayload.ManagerID)
	assert.False(t, record.Open())
}

func TestSubmitReturnKeepsExplicitNotes(t *testing.T) {
	client := &fakeReturnsClient{}

	_, err := SubmitReturn(context.Background(), client, zap.NewNop(), manager(), 4, "DAMAGED", "Cracked screen")
	require.NoError(t, err)
	assert.Equal(t, model.ConditionDamaged, client.lastPayload.Condition)
	assert.Equal(t, "Cracked screen", client.lastPayload.Notes)
}

func TestSubmitReturnGatesByRole(t *testing.T) {
	client := &fakeReturnsClient{}

	_, err := SubmitReturn(context.Background(), client, zap.NewNop(), nil, 4, "GOOD", "")
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = SubmitReturn(context.Background(), client, zap.NewNop(), &model.User{ID: 9, Role: model.RoleUser}, 4, "GOOD", "")
	assert.ErrorIs(t, err, ErrManagerOnly)
	assert.Zero(t, client.returnCalls)
}

func TestSubmitReturnSurfacesServerMessage(t *testing.T) {
	client := &fakeReturnsClient{
		returnErr: &checkoutclient.APIError{StatusCode: 400, Message: "Record already closed"},
	}

	_, err := SubmitReturn(context.Background(), client, zap.NewNop(), manager(), 4, "GOOD", "")
	require.Error(t, err)
	assert.Equal(t, "Record already closed", err.Error())
}
