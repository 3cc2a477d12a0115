package checkoutclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, staticToken(token), zap.NewNop())
}

func TestAuthorizationHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, "dG9rZW4=", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]model.Equipment{})
	})

	_, err := client.ListEquipment(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Basic dG9rZW4=", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestAuthorizationHeaderOmittedWhenAnonymous(t *testing.T) {
	var gotAuth string
	sawAuth := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]model.Equipment{})
	})

	_, err := client.ListEquipment(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, sawAuth)
}

func TestLoginMapsUnauthorized(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestServerErrorMessageSurfacesVerbatim(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Equipment Camera X is no longer available"})
	})

	_, err := client.ApproveRequest(context.Background(), 5, ApprovalPayload{ApproverID: 2, Notes: "ok"})
	require.Error(t, err)
	assert.Equal(t, "Equipment Camera X is no longer available", ServerMessage(err, "fallback"))
	assert.True(t, errors.Is(err, ErrRejected))
}

func TestServerMessageFallsBackWithoutErrorField(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	})

	_, err := client.ListCurrentRecords(context.Background())
	require.Error(t, err)
	assert.Equal(t, "generic fallback", ServerMessage(err, "generic fallback"))
}

func TestCreateRequestPayloadShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(model.CheckoutRequest{ID: 42, Status: model.RequestPending})
	})

	neededBy, err := model.ParseDate("2025-01-10")
	require.NoError(t, err)
	request, err := client.CreateRequest(context.Background(), CheckoutRequestPayload{
		UserID:       3,
		EquipmentIDs: []int64{9},
		Purpose:      "Field work",
		NeededByDate: neededBy,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/checkout/request", gotPath)
	assert.Equal(t, map[string]any{
		"userId":       float64(3),
		"equipmentIds": []any{float64(9)},
		"purpose":      "Field work",
		"neededByDate": "2025-01-10",
	}, gotBody)
	assert.Equal(t, int64(42), request.ID)
}

func TestTransitionPaths(t *testing.T) {
	var gotPaths []string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		switch {
		case r.URL.Path == "/api/checkout/requests/7/fulfill":
			json.NewEncoder(w).Encode([]model.CheckoutRecord{{ID: 1}})
		case r.URL.Path == "/api/checkout/records/4/return":
			json.NewEncoder(w).Encode(model.CheckoutRecord{ID: 4})
		default:
			json.NewEncoder(w).Encode(model.CheckoutRequest{ID: 7})
		}
	})

	ctx := context.Background()
	_, err := client.RejectRequest(ctx, 7, ApprovalPayload{ApproverID: 1, Notes: "out of stock"})
	require.NoError(t, err)
	_, err = client.FulfillRequest(ctx, 7, FulfillmentPayload{ManagerID: 1, ExpectedReturnDate: model.DateOf(time.Now())})
	require.NoError(t, err)
	_, err = client.ReturnRecord(ctx, 4, ReturnPayload{ManagerID: 1, Condition: model.ConditionGood, Notes: "fine"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /api/checkout/requests/7/reject",
		"POST /api/checkout/requests/7/fulfill",
		"POST /api/checkout/records/4/return",
	}, gotPaths)
}
