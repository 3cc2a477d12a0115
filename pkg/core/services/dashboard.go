package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// DashboardClient defines the API operations needed by the dashboard.
type DashboardClient interface {
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	ListRequests(ctx context.Context) ([]model.CheckoutRequest, error)
}

// Dashboard carries the derived summary counts.
type Dashboard struct {
	Available  int
	CheckedOut int
	Pending    int
}

// LoadDashboard derives the summary counts from fresh fetches. It never
// returns an error: an equipment fetch failure degrades every count to
// zero, a requests fetch failure (or an anonymous session) degrades only
// the pending count, so the rest of the view stays usable.
func LoadDashboard(ctx context.Context, client DashboardClient, logger *zap.Logger, sessionActive bool) *Dashboard {
	dashboard := &Dashboard{}

	equipment, err := client.ListEquipment(ctx)
	if err != nil {
		logger.Warn("Dashboard equipment fetch failed, showing zero counts", zap.Error(err))
		return dashboard
	}
	for _, item := range equipment {
		switch item.Status {
		case model.StatusAvailable:
			dashboard.Available++
		case model.StatusCheckedOut:
			dashboard.CheckedOut++
		}
	}

	if !sessionActive {
		return dashboard
	}
	requests, err := client.ListRequests(ctx)
	if err != nil {
		logger.Warn("Dashboard requests fetch failed, pending count degraded to zero", zap.Error(err))
		return dashboard
	}
	for _, request := range requests {
		if request.Status == model.RequestPending {
			dashboard.Pending++
		}
	}
	return dashboard
}
