package checkoutclient

import (
	"context"
	"fmt"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// ListEquipment fetches the full equipment collection. The endpoint is
// public; no session is required.
func (c *Client) ListEquipment(ctx context.Context) ([]model.Equipment, error) {
	var equipment []model.Equipment
	if err := c.get(ctx, "/api/equipment", &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// GetEquipment fetches a single item by id.
func (c *Client) GetEquipment(ctx context.Context, id int64) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := c.get(ctx, fmt.Sprintf("/api/equipment/%d", id), &equipment); err != nil {
		return nil, err
	}
	return &equipment, nil
}

// CreateEquipment registers a new item. Manager-only on the server side.
func (c *Client) CreateEquipment(ctx context.Context, equipment model.Equipment) (*model.Equipment, error) {
	var created model.Equipment
	if err := c.post(ctx, "/api/equipment", equipment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
