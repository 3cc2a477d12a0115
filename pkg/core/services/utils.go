package services

import (
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

// defaultDateOffsetDays is used for both the needed-by default on new
// requests and the expected-return default on fulfillment.
const defaultDateOffsetDays = 7

func defaultFutureDate(clk clock.Clock) model.Date {
	return model.DateOf(clk.Now().AddDate(0, 0, defaultDateOffsetDays))
}

// statusColor maps a request status to its display color class.
func statusColor(status model.RequestStatus) string {
	switch status {
	case model.RequestPending:
		return "warning"
	case model.RequestApproved:
		return "success"
	case model.RequestRejected:
		return "danger"
	default:
		return "secondary"
	}
}
