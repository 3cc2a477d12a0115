package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// ErrInvalidCredentials is returned when the server rejects a login.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthClient defines the API operations needed by the auth service.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	Register(ctx context.Context, payload checkoutclient.RegisterPayload) (*model.User, error)
}

// SessionState defines the session mutations the auth service performs.
type SessionState interface {
	Establish(user model.User, username, password string) error
	Clear() error
}

var validate = validator.New()

// Login authenticates against the API and establishes the local session on
// success. A 401 maps to ErrInvalidCredentials; other failures pass through.
func Login(ctx context.Context, client AuthClient, sess SessionState, logger *zap.Logger, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	logger.Info("Logging in", zap.String("username", username))
	user, err := client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, checkoutclient.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := sess.Establish(*user, username, password); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("Logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))
	return user, nil
}

// RegisterForm captures the account fields validated client-side before any
// network call: username 3-50 chars, password at least 6 chars and matching
// its confirmation, valid email.
type RegisterForm struct {
	Username        string `validate:"required,min=3,max=50"`
	Email           string `validate:"required,email"`
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required"`
	Department      string
	EmployeeID      string
}

// Register validates the form locally, submits it, and returns the created
// user. Server errors surface verbatim through the returned error.
func Register(ctx context.Context, client AuthClient, logger *zap.Logger, form RegisterForm) (*model.User, error) {
	if err := validate.Struct(form); err != nil {
		return nil, fmt.Errorf("registration validation failed: %w", err)
	}
	if form.Password != form.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}

	logger.Info("Registering account", zap.String("username", form.Username))
	user, err := client.Register(ctx, checkoutclient.RegisterPayload{
		Username:   form.Username,
		Email:      form.Email,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Password:   form.Password,
		Department: form.Department,
		EmployeeID: form.EmployeeID,
		Role:       model.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("%s", checkoutclient.ServerMessage(err, "registration failed"))
	}

	logger.Info("Account created", zap.Int64("user_id", user.ID))
	return user, nil
}

// Logout clears the stored token and user, returning the UI to the
// anonymous state.
func Logout(sess SessionState, logger *zap.Logger) error {
	if err := sess.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Logged out")
	return nil
}
