package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/internal/config"
	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/session"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Client  *checkoutclient.Client
	Session *session.Session
	Clock   clock.Clock
	Logger  *zap.Logger
	Ctx     context.Context
}
