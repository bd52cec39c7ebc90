package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"gym-system/internal/entities"
	"gym-system/pkg/utils"
)

var inventoryHeaders = []string{
	"ID", "Name", "Category", "Brand", "Model", "Serial Number", "Quantity",
	"Purchase Price", "Purchase Date", "Condition", "Status", "Location",
}

// ExportEquipments returns the inventory as JSON, or as an XLSX attachment
// when ?format=xlsx is given. The XLSX export ignores pagination and dumps
// everything matching the filters.
func (c *EquipmentController) ExportEquipments(ctx echo.Context) error {
	filter := utils.ParseListQuery(ctx.Request().URL.Query(), equipmentListFilters)
	format := strings.ToLower(ctx.QueryParam("format"))
	if format == "xlsx" {
		filter.Limit = 0
		filter.Offset = 0
	}

	list, err := c.service.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, list)
	}

	return utils.SuccessResponse(ctx, list, "Equipment inventory retrieved successfully", http.StatusOK)
}

func inventoryRow(item entities.Equipment) []interface{} {
	dateFmt := "02.01.2006"
	var purchaseDate, purchasePrice string
	if item.PurchaseDate.Valid {
		purchaseDate = item.PurchaseDate.Time.Format(dateFmt)
	}
	if item.PurchasePrice.Valid {
		purchasePrice = fmt.Sprintf("%.2f", item.PurchasePrice.Float64)
	}

	return []interface{}{
		item.ID, item.Name, item.Category, item.Brand.String, item.Model.String,
		item.SerialNumber.String, item.Quantity, purchasePrice, purchaseDate,
		item.Condition, item.Status, item.Location.String,
	}
}

func (c *EquipmentController) respondWithXLSX(ctx echo.Context, data []entities.Equipment) error {
	f := excelize.NewFile()
	sheet := "Equipment Inventory"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "L1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "F", 20)
	f.SetColWidth(sheet, "H", "I", 16)
	f.SetColWidth(sheet, "L", "L", 25)

	fileName := fmt.Sprintf("equipment_inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
