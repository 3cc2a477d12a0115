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

type fakeApprovalsClient struct {
	listCalls    int
	approveCalls int
	rejectCalls  int
	fulfillCalls int
	requests     []model.CheckoutRequest
	lastApproval checkoutclient.ApprovalPayload
	lastFulfill  checkoutclient.FulfillmentPayload
	approveErr   error
}

func (f *fakeApprovalsClient) ListRequests(ctx context.Context) ([]model.CheckoutRequest, error) {
	f.listCalls++
	return f.requests, nil
}

func (f *fakeApprovalsClient) ApproveRequest(ctx context.Context, requestID int64, payload checkoutclient.ApprovalPayload) (*model.CheckoutRequest, error) {
	f.approveCalls++
	f.lastApproval = payload
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	return &model.CheckoutRequest{ID: requestID, Status: model.RequestApproved}, nil
}

func (f *fakeApprovalsClient) RejectRequest(ctx context.Context, requestID int64, payload checkoutclient.ApprovalPayload) (*model.CheckoutRequest, error) {
	f.rejectCalls++
	f.lastApproval = payload
	return &model.CheckoutRequest{ID: requestID, Status: model.RequestRejected}, nil
}

func (f *fakeApprovalsClient) FulfillRequest(ctx context.Context, requestID int64, payload checkoutclient.FulfillmentPayload) ([]model.CheckoutRecord, error) {
	f.fulfillCalls++
	f.lastFulfill = payload
	return []model.CheckoutRecord{{ID: 1}, {ID: 2}}, nil
}

func manager() *model.User {
	return &model.User{ID: 2, Username: "mgr", Role: model.RoleEquipmentManager}
}

func TestLoadPendingApprovalsPartitionsByStatus(t *testing.T) {
	client := &fakeApprovalsClient{requests: []model.CheckoutRequest{
		{ID: 1, Status: model.RequestPending},
		{ID: 2, Status: model.RequestApproved},
		{ID: 3, Status: model.RequestRejected},
		{ID: 4, Status: model.RequestCompleted},
		{ID: 5, Status: model.RequestPending},
	}}
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))

	board, err := LoadPendingApprovals(context.Background(), client, clk, zap.NewNop(), manager())
	require.NoError(t, err)

	require.Len(t, board.Pending, 2)
	assert.Equal(t, int64(1), board.Pending[0].ID)
	assert.Equal(t, int64(5), board.Pending[1].ID)

	require.Len(t, board.ReadyToFulfill, 1)
	assert.Equal(t, int64(2), board.ReadyToFulfill[0].ID)
	assert.Equal(t, "2025-03-08", board.ReadyToFulfill[0].DefaultReturnDate.String())
}

func TestLoadPendingApprovalsGatesByRole(t *testing.T) {
	client := &fakeApprovalsClient{}
	clk := clock.NewMockClock(time.Now())

	_, err := LoadPendingApprovals(context.Background(), client, clk, zap.NewNop(), nil)
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = LoadPendingApprovals(context.Background(), client, clk, zap.NewNop(), &model.User{ID: 9, Role: model.RoleUser})
	assert.ErrorIs(t, err, ErrManagerOnly)
	assert.Zero(t, client.listCalls)
}

func TestApproveDefaultsNotes(t *testing.T) {
	client := &fakeApprovalsClient{}

	request, err := Approve(context.Background(), client, zap.NewNop(), manager(), 7, "")
	require.NoError(t, err)

	assert.Equal(t, model.RequestApproved, request.Status)
	assert.Equal(t, int64(2), client.lastApproval.ApproverID)
	assert.Equal(t, "Approved", client.lastApproval.Notes)
}

func TestApproveKeepsExplicitNotes(t *testing.T) {
	client := &fakeApprovalsClient{}

	_, err := Approve(context.Background(), client, zap.NewNop(), manager(), 7, "Looks fine")
	require.NoError(t, err)
	assert.Equal(t, "Looks fine", client.lastApproval.Notes)
}

func TestRejectRequiresReasonBeforeNetwork(t *testing.T) {
	client := &fakeApprovalsClient{}

	_, err := Reject(context.Background(), client, zap.NewNop(), manager(), 7, "")
	require.Error(t, err)
	assert.Zero(t, client.rejectCalls)

	request, err := Reject(context.Background(), client, zap.NewNop(), manager(), 7, "Out of stock")
	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, request.Status)
	assert.Equal(t, "Out of stock", client.lastApproval.Notes)
}

func TestFulfillRequiresReturnDate(t *testing.T) {
	client := &fakeApprovalsClient{}

	_, err := Fulfill(context.Background(), client, zap.NewNop(), manager(), 7, model.Date{})
	require.Error(t, err)
	assert.Zero(t, client.fulfillCalls)

	records, err := Fulfill(context.Background(), client, zap.NewNop(), manager(), 7, model.NewDate(2025, time.March, 8))
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(2), client.lastFulfill.ManagerID)
	assert.Equal(t, "2025-03-08", client.lastFulfill.ExpectedReturnDate.String())
}

func TestTransitionsGateByRole(t *testing.T) {
	client := &fakeApprovalsClient{}
	plain := &model.User{ID: 9, Role: model.RoleUser}

	_, err := Approve(context.Background(), client, zap.NewNop(), plain, 7, "")
	assert.ErrorIs(t, err, ErrManagerOnly)
	_, err = Reject(context.Background(), client, zap.NewNop(), plain, 7, "reason")
	assert.ErrorIs(t, err, ErrManagerOnly)
	_, err = Fulfill(context.Background(), client, zap.NewNop(), plain, 7, model.NewDate(2025, time.March, 8))
	assert.ErrorIs(t, err, ErrManagerOnly)

	assert.Zero(t, client.approveCalls)
	assert.Zero(t, client.rejectCalls)
	assert.Zero(t, client.fulfillCalls)
}

func TestApproveSurfacesServerMessage(t *testing.T) {
	client := &fakeApprovalsClient{
		approveErr: &checkoutclient.APIError{StatusCode: 400, Message: "Request already processed"},
	}

	_, err := Approve(context.Background(), client, zap.NewNop(), manager(), 7, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Request already processed")
}
