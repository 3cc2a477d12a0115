package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/core/session"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

func TestReturnCmdRefetchesCheckedOutList(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/checkout/records/4/return":
			json.NewEncoder(w).Encode(model.CheckoutRecord{ID: 4, Equipment: model.Equipment{Name: "Canon R5"}})
		case "/api/checkout/records/current":
			json.NewEncoder(w).Encode([]model.CheckoutRecord{})
		case "/api/checkout/requests":
			json.NewEncoder(w).Encode([]model.CheckoutRequest{})
		default:
			json.NewEncoder(w).Encode([]model.Equipment{})
		}
	}))
	defer server.Close()

	store, err := session.NewStoreAt(filepath.Join(t.TempDir(), "session.test.json"))
	require.NoError(t, err)
	sess := session.New(store)
	require.NoError(t, sess.Establish(model.User{ID: 2, Username: "mgr", Role: model.RoleEquipmentManager}, "mgr", "secret"))

	app := &AppContext{
		Client:  checkoutclient.NewClient(server.URL, 5*time.Second, sess, zap.NewNop()),
		Session: sess,
		Clock:   clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		Logger:  zap.NewNop(),
		Ctx:     context.Background(),
	}

	cmd := ReturnCmd(app)
	cmd.SetArgs([]string{"4", "--condition", "GOOD", "--yes"})
	require.NoError(t, cmd.Execute())

	returnAt := slices.Index(paths, "POST /api/checkout/records/4/return")
	listAt := slices.Index(paths, "GET /api/checkout/records/current")
	require.GreaterOrEqual(t, returnAt, 0)
	require.GreaterOrEqual(t, listAt, 0)
	assert.Greater(t, listAt, returnAt, "open records must be re-fetched after the return")
	assert.Contains(t, paths, "GET /api/equipment")
}
