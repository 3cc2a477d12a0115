package checkoutclient

import (
	"context"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// LoginPayload is the POST /api/auth/login body.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterPayload is the POST /api/auth/register body.
type RegisterPayload struct {
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Password   string     `json:"password"`
	Department string     `json:"department,omitempty"`
	EmployeeID string     `json:"employeeId,omitempty"`
	Role       model.Role `json:"role"`
}

// Login authenticates and returns the user object. A 401 comes back marked
// with ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := c.post(ctx, "/api/auth/login", LoginPayload{Username: username, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account and returns the created user.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*model.User, error) {
	var user model.User
	if err := c.post(ctx, "/api/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
