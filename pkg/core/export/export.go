package export

import (
	"context"
	"fmt"

	"github.com/tealeg/xlsx/v3"
	"go.uber.org/zap"

	"github.com/checkout-zone/checkout-cli/pkg/core/model"
)

// EquipmentLister defines the API operation needed for catalog export.
type EquipmentLister interface {
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
}

// Summary reports what an export wrote.
type Summary struct {
	Rows       int
	Available  int
	CheckedOut int
	Path       string
}

var header = []string{
	"Internal ID", "Serial Number", "Name", "Brand", "Model",
	"Type", "Condition", "Status", "Location", "Notes",
}

// EquipmentToXLSX fetches the full catalog and writes it to an .xlsx
// workbook with one sheet, a header row and a trailing summary.
func EquipmentToXLSX(ctx context.Context, client EquipmentLister, logger *zap.Logger, path string) (*Summary, error) {
	equipment, err := client.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Equipment")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		cell := headerRow.AddCell()
		cell.SetString(title)
	}

	summary := &Summary{Path: path}
	for _, item := range equipment {
		row := sheet.AddRow()
		for _, value := range []string{
			item.InternalID, item.SerialNumber, item.Name, item.Brand, item.Model,
			item.Type, string(item.Condition), string(item.Status), item.Location, item.Notes,
		} {
			cell := row.AddCell()
			cell.SetString(value)
		}
		summary.Rows++
		switch item.Status {
		case model.StatusAvailable:
			summary.Available++
		case model.StatusCheckedOut:
			summary.CheckedOut++
		}
	}

	sheet.AddRow() // spacer
	totals := sheet.AddRow()
	totals.AddCell().SetString("Total")
	totals.AddCell().SetInt(summary.Rows)
	availableRow := sheet.AddRow()
	availableRow.AddCell().SetString("Available")
	availableRow.AddCell().SetInt(summary.Available)
	checkedOutRow := sheet.AddRow()
	checkedOutRow.AddCell().SetString("Checked out")
	checkedOutRow.AddCell().SetInt(summary.CheckedOut)

	if err := file.Save(path); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("Equipment exported",
		zap.String("path", path),
		zap.Int("rows", summary.Rows))
	return summary, nil
}
