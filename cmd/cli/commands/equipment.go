package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
	"github.com/checkout-zone/checkout-cli/pkg/core/services"
	"github.com/checkout-zone/checkout-cli/pkg/core/session"
)

// EquipmentCmd creates the equipment catalog command
func EquipmentCmd(app *AppContext) *cobra.Command {
	var equipmentType string
	var viewMode string

	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Browse the equipment catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A chosen view mode persists across sessions.
			if viewMode != "" {
				if err := app.Session.SetViewMode(viewMode); err != nil {
					return err
				}
			}

			catalog, err := services.LoadEquipment(app.Ctx, app.Client, app.Logger, app.Session.Active())
			if err != nil {
				return err
			}

			items := catalog.FilterByType(equipmentType)
			if len(items) == 0 {
				fmt.Println("No equipment available")
				return nil
			}

			renderCatalog(items, app.Session.ViewMode())
			return nil
		},
	}

	cmd.Flags().StringVar(&equipmentType, "type", "", "Filter by equipment type (client-side)")
	cmd.Flags().StringVar(&viewMode, "view", "", "Display mode: grid or list (persists)")

	return cmd
}

func renderCatalog(items []services.EquipmentView, mode string) {
	if mode == session.ViewModeList {
		for _, item := range items {
			action := ""
			if item.CanRequest {
				action = "  → request " + fmt.Sprint(item.ID)
			}
			fmt.Printf("%4d  %-25s %-12s [%s] %s%s\n",
				item.ID, item.Name, item.Type,
				badge(item.StatusColor, string(item.Status)),
				orNA(item.Location), action)
		}
		return
	}

	// Grid mode: one card per item.
	for _, item := range items {
		fmt.Printf("\n┌ (%s) %s%s%s\n", item.TypeIcon, colorBold, item.Name, colorReset)
		fmt.Printf("│ %s %s\n", orNA(item.Brand), item.Model)
		fmt.Printf("│ %s  %s\n", badge(item.StatusColor, string(item.Status)), item.Condition)
		fmt.Printf("│ Location: %s  Type: %s\n", orNA(item.Location), item.Type)
		if item.CanRequest {
			fmt.Printf("│ Request checkout with: request %d\n", item.ID)
		}
		fmt.Printf("└ id %d\n", item.ID)
	}
	fmt.Println()
}

// AddEquipmentCmd creates the add-equipment command (managers only)
func AddEquipmentCmd(app *AppContext) *cobra.Command {
	var equipment model.Equipment
	var condition string

	cmd := &cobra.Command{
		Use:   "add-equipment <name>",
		Short: "Register a new equipment item (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			equipment.Name = args[0]
			equipment.Condition = model.EquipmentCondition(condition)

			created, err := services.AddEquipment(app.Ctx, app.Client, app.Logger, app.Session.CurrentUser(), equipment)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Equipment added: %s (id %d, %s)\n", created.Name, created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&equipment.InternalID, "internal-id", "", "Internal inventory ID (required)")
	cmd.Flags().StringVar(&equipment.SerialNumber, "serial", "", "Serial number")
	cmd.Flags().StringVar(&equipment.Type, "type", "", "Equipment type (required)")
	cmd.Flags().StringVar(&equipment.Brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&equipment.Model, "model", "", "Model")
	cmd.Flags().StringVar(&condition, "condition", "", "Condition: NEW, EXCELLENT, GOOD, FAIR, POOR or DAMAGED (required)")
	cmd.Flags().StringVar(&equipment.Location, "location", "", "Storage location")
	cmd.Flags().StringVar(&equipment.Notes, "notes", "", "Free-form notes")

	return cmd
}
