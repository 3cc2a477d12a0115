package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/cmd/cli/commands"
	"github.com/checkout-zone/checkout-cli/internal/config"
	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/session"
	"github.com/checkout-zone/checkout-cli/pkg/utils/clock"
	"github.com/checkout-zone/checkout-cli/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "checkout-cli",
		Short: "Checkout Zone CLI - browse, request and manage equipment checkouts",
		Long:  `A CLI client for the Checkout Zone equipment checkout and approval workflow.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(
		commands.LoginCmd(appRef()),
		commands.LogoutCmd(appRef()),
		commands.RegisterCmd(appRef()),
		commands.WhoamiCmd(appRef()),
		commands.EquipmentCmd(appRef()),
		commands.AddEquipmentCmd(appRef()),
		commands.RequestCmd(appRef()),
		commands.MyRequestsCmd(appRef()),
		commands.MyCheckoutsCmd(appRef()),
		commands.ApprovalsCmd(appRef()),
		commands.ApproveCmd(appRef()),
		commands.RejectCmd(appRef()),
		commands.FulfillCmd(appRef()),
		commands.CheckedOutCmd(appRef()),
		commands.ReturnCmd(appRef()),
		commands.DashboardCmd(appRef()),
		commands.ExportCmd(appRef()),
		commands.ThemeCmd(appRef()),
		commands.InteractiveCmd(appRef()),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. Commands are built before initApp
// runs, so they hold the pointer and initApp fills it in.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, session storage and the API client
func initApp() error {
	appRef()
	app.Ctx = context.Background()
	app.Clock = clock.NewRealClock()

	var err error
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("api_base_url", app.Cfg.APIBaseURL))

	store, err := session.NewStore(env)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	app.Session = session.New(store)

	// Rehydrate the persisted session; malformed state falls back to
	// anonymous.
	app.Session.Rehydrate()
	if user := app.Session.CurrentUser(); user != nil {
		app.Logger.Debug("Session restored",
			zap.String("username", user.Username),
			zap.String("role", string(user.Role)))
	}

	app.Client = checkoutclient.NewClient(app.Cfg.APIBaseURL, app.Cfg.RequestTimeout, app.Session, app.Logger)
	return nil
}
