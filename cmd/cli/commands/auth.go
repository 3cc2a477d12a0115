package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptLine("Password")
			if err != nil {
				return err
			}

			user, err := services.Login(app.Ctx, app.Client, app.Session, app.Logger, args[0], password)
			if err != nil {
				if errors.Is(err, services.ErrInvalidCredentials) {
					fmt.Println("✗ Invalid username or password")
					return nil
				}
				return err
			}

			fmt.Printf("\n✓ Logged in as %s (%s)\n", user.Username, user.Role)
			if user.Role.IsManager() {
				fmt.Println("Manager commands available: approvals, approve, reject, fulfill, checked-out, return, add-equipment")
			}
			return nil
		},
	}
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Session, app.Logger); err != nil {
				return err
			}
			fmt.Println("✓ Logged out")
			return nil
		},
	}
}

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	var form services.RegisterForm

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Username = args[0]

			var err error
			if form.Password, err = promptLine("Password"); err != nil {
				return err
			}
			if form.ConfirmPassword, err = promptLine("Confirm password"); err != nil {
				return err
			}

			user, err := services.Register(app.Ctx, app.Client, app.Logger, form)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Account created for %s - you can now log in\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&form.Department, "department", "", "Department")
	cmd.Flags().StringVar(&form.EmployeeID, "employee-id", "", "Employee ID")

	return cmd
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := app.Session.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (%s)\n", user.Username, user.FullName())
			fmt.Printf("Role:       %s\n", user.Role)
			fmt.Printf("Department: %s\n", orNA(user.Department))
			fmt.Printf("View mode:  %s\n", app.Session.ViewMode())
			fmt.Printf("Theme:      %s\n", app.Session.Theme())
			return nil
		},
	}
}
