package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/clients/checkoutclient"
	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// EquipmentClient defines the API operations needed by the catalog service.
type EquipmentClient interface {
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
}

// EquipmentCreator defines the API operation needed to add equipment.
type EquipmentCreator interface {
	CreateEquipment(ctx context.Context, equipment model.Equipment) (*model.Equipment, error)
}

// EquipmentView is the display model for one catalog item.
type EquipmentView struct {
	model.Equipment
	StatusColor string
	TypeIcon    string
	// CanRequest is true only for AVAILABLE items seen by a logged-in
	// user; the checkout action is hidden otherwise, not just disabled.
	CanRequest bool
}

// Catalog is the last-fetched equipment snapshot. Filtering happens over
// this snapshot without re-fetching.
type Catalog struct {
	Items []EquipmentView
}

// FilterByType returns the items matching the given type, or every item
// when equipmentType is empty. Matching ignores case.
func (c *Catalog) FilterByType(equipmentType string) []EquipmentView {
	if equipmentType == "" {
		return c.Items
	}
	var filtered []EquipmentView
	for _, item := range c.Items {
		if strings.EqualFold(item.Type, equipmentType) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// LoadEquipment fetches the full catalog and builds the derived display
// model. sessionActive gates the per-item checkout action.
func LoadEquipment(ctx context.Context, client EquipmentClient, logger *zap.Logger, sessionActive bool) (*Catalog, error) {
	logger.Debug("Fetching equipment catalog")
	equipment, err := client.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	logger.Debug("Fetched equipment", zap.Int("count", len(equipment)))

	catalog := &Catalog{Items: make([]EquipmentView, 0, len(equipment))}
	for _, item := range equipment {
		catalog.Items = append(catalog.Items, EquipmentView{
			Equipment:   item,
			StatusColor: equipmentStatusColor(item.Status),
			TypeIcon:    typeIcon(item.Type),
			CanRequest:  item.Status == model.StatusAvailable && sessionActive,
		})
	}
	return catalog, nil
}

// AddEquipment registers a new item. Manager-only; new equipment always
// starts AVAILABLE regardless of what the caller set.
func AddEquipment(ctx context.Context, client EquipmentCreator, logger *zap.Logger, user *model.User, equipment model.Equipment) (*model.Equipment, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if !user.Role.IsManager() {
		return nil, ErrManagerOnly
	}
	if equipment.InternalID == "" || equipment.Name == "" || equipment.Type == "" || equipment.Condition == "" {
		return nil, fmt.Errorf("internal id, name, type and condition are required")
	}
	equipment.Status = model.StatusAvailable

	logger.Info("Adding equipment", zap.String("name", equipment.Name), zap.String("internal_id", equipment.InternalID))
	created, err := client.CreateEquipment(ctx, equipment)
	if err != nil {
		return nil, fmt.Errorf("%s", checkoutclient.ServerMessage(err, "failed to add equipment"))
	}
	logger.Info("Equipment added", zap.Int64("id", created.ID))
	return created, nil
}

func equipmentStatusColor(status model.EquipmentStatus) string {
	switch status {
	case model.StatusAvailable:
		return "success"
	case model.StatusCheckedOut:
		return "warning"
	default:
		return "secondary"
	}
}

// typeIcon maps an equipment type to a display glyph. Unknown types get a
// generic tag.
func typeIcon(equipmentType string) string {
	switch strings.ToUpper(equipmentType) {
	case "LAPTOP", "COMPUTER":
		return "laptop"
	case "CAMERA":
		return "camera"
	case "PHONE", "TABLET":
		return "phone"
	case "PROJECTOR":
		return "projector"
	case "AUDIO", "MICROPHONE":
		return "mic"
	case "VEHICLE":
		return "truck"
	case "TOOL", "TOOLS":
		return "tools"
	default:
		return "tag"
	}
}
