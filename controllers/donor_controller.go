package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type DonorController struct {
	store *stores.DonorStore
}

func NewDonorController(store *stores.DonorStore) *DonorController {
	return &DonorController{store: store}
}

func (c *DonorController) GetDonors(ctx *fiber.Ctx) error {
	donors, err := c.store.FetchAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"donors": donors},
		"state":   c.store.Snapshot(),
	})
}

func (c *DonorController) CreateDonor(ctx *fiber.Ctx) error {
	var donor models.Donor
	if err := ctx.BodyParser(&donor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	donor.ID = ""

	validate := validator.New()
	if err := validate.Struct(donor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := donor.CheckContactPerson(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := c.store.Create(ctx.Context(), donor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"donor": created}})
}

func (c *DonorController) UpdateDonor(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var donor models.Donor
	if err := ctx.BodyParser(&donor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	donor.ID = id

	validate := validator.New()
	if err := validate.Struct(donor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := donor.CheckContactPerson(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := c.store.Update(ctx.Context(), id, donor)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"donor": updated}})
}

// DeleteDonor removes the donor only. Donations keep their donorId; the
// views show a placeholder for it from then on.
func (c *DonorController) DeleteDonor(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.store.Delete(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"id": id}})
}
