package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/services"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type LogisticsController struct {
	store   *stores.LogisticsStore
	service *services.LogisticsService
}

func NewLogisticsController(store *stores.LogisticsStore, service *services.LogisticsService) *LogisticsController {
	return &LogisticsController{store: store, service: service}
}

func (c *LogisticsController) GetLogistics(ctx *fiber.Ctx) error {
	records, err := c.store.FetchAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"logistics": records, "updatingItemId": c.store.UpdatingItemID()},
		"state":   c.store.Snapshot(),
	})
}

type createShipmentInput struct {
	Destination     string `json:"destination" validate:"required"`
	InventoryItemID string `json:"inventoryItemId" validate:"required"`
	QuantityShipped int    `json:"quantityShipped" validate:"required,gt=0"`
}

func (c *LogisticsController) CreateShipment(ctx *fiber.Ctx) error {
	var input createShipmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := c.service.CreateShipment(ctx.Context(), services.CreateShipmentInput{
		Destination:     input.Destination,
		InventoryItemID: input.InventoryItemID,
		QuantityShipped: input.QuantityShipped,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"shipment": record}})
}

type updateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

func (c *LogisticsController) UpdateStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input updateStatusInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status, err := models.ParseShipmentStatus(input.Status)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := c.service.UpdateShipmentStatus(ctx.Context(), id, status)
	if err != nil {
		if errors.Is(err, services.ErrShipmentFinalized) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"shipment": record}})
}

// ExportExcel generates and sends the shipment list as an Excel file.
func (c *LogisticsController) ExportExcel(ctx *fiber.Ctx) error {
	records, err := c.store.FetchAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Destination")
	f.SetCellValue(sheet, "B1", "Item Name")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Quantity Shipped")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Created")

	for i, record := range records {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), record.Destination)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), record.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), record.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), record.QuantityShipped)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), string(record.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), record.CreationDate.Format("2006-01-02 15:04"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="shipments.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
