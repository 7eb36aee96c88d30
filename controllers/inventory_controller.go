package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type InventoryController struct {
	store *stores.InventoryStore
}

func NewInventoryController(store *stores.InventoryStore) *InventoryController {
	return &InventoryController{store: store}
}

func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	items, err := c.store.FetchAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"inventory": items},
		"state":   c.store.Snapshot(),
	})
}

func (c *InventoryController) AddItem(ctx *fiber.Ctx) error {
	var item models.InventoryItem
	if err := ctx.BodyParser(&item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	item.ID = ""

	validate := validator.New()
	if err := validate.Struct(item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := c.store.Create(ctx.Context(), item)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"item": created}})
}

func (c *InventoryController) UpdateItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var item models.InventoryItem
	if err := ctx.BodyParser(&item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	item.ID = id

	validate := validator.New()
	if err := validate.Struct(item); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := c.store.Update(ctx.Context(), id, item)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"item": updated}})
}

// DeleteItem removes the inventory item. Donation history for the item is
// kept.
func (c *InventoryController) DeleteItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.store.Delete(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}

// ExportExcel generates and sends the inventory as an Excel file.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	items, err := c.store.FetchAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Item Name")
	f.SetCellValue(sheet, "B1", "Category")
	f.SetCellValue(sheet, "C1", "Quantity")

	for i, item := range items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), item.Quantity)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
