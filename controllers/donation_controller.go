package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/services"
	"github.com/prathyu116/NGO-RESOURCE-CLIENT/stores"
)

type DonationController struct {
	store   *stores.DonationStore
	service *services.DonationService
}

func NewDonationController(store *stores.DonationStore, service *services.DonationService) *DonationController {
	return &DonationController{store: store, service: service}
}

func (c *DonationController) GetDonations(ctx *fiber.Ctx) error {
	filter := stores.DonationFilter{
		DonorID:  ctx.Query("donorId"),
		ItemName: ctx.Query("itemName"),
		Category: ctx.Query("category"),
	}

	donations, err := c.store.FetchAll(ctx.Context(), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"donations": donations},
		"state":   c.store.Snapshot(),
	})
}

type recordDonationInput struct {
	Donor struct {
		ID            string `json:"id"`
		Name          string `json:"name" validate:"required"`
		Type          string `json:"type" validate:"required,oneof=Individual Organization"`
		ContactPerson string `json:"contactPerson"`
		Email         string `json:"email" validate:"omitempty,email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
	} `json:"donor"`
	Donation struct {
		ItemName string `json:"itemName" validate:"required"`
		Category string `json:"category" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,gt=0"`
	} `json:"donation"`
}

// RecordDonation runs the donor → donation → inventory workflow. Passing a
// donor id reuses that donor; leaving it empty creates a new one. Retries
// after a partial failure must pass the returned donorId back in.
func (c *DonationController) RecordDonation(ctx *fiber.Ctx) error {
	var input recordDonationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	donor := models.Donor{
		ID:            input.Donor.ID,
		Name:          input.Donor.Name,
		Type:          input.Donor.Type,
		ContactPerson: input.Donor.ContactPerson,
		Email:         input.Donor.Email,
		Phone:         input.Donor.Phone,
		Address:       input.Donor.Address,
	}
	if err := donor.CheckContactPerson(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := c.service.RecordDonation(ctx.Context(), services.RecordDonationInput{
		Donor: donor,
		Donation: models.Donation{
			ItemName: input.Donation.ItemName,
			Category: input.Donation.Category,
			Quantity: input.Donation.Quantity,
		},
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": result})
}

// DonorHistory returns one donor's donation history with the donor attached
// when still resolvable.
func (c *DonationController) DonorHistory(ctx *fiber.Ctx) error {
	donorID := ctx.Params("donorId")

	view, err := c.service.DonorHistory(ctx.Context(), donorID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": view})
}

// ItemDonors lists the donors behind one inventory item.
func (c *DonationController) ItemDonors(ctx *fiber.Ctx) error {
	itemName := ctx.Query("itemName")
	category := ctx.Query("category")
	if itemName == "" || category == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "itemName and category are required"})
	}

	entries, err := c.service.ItemDonors(ctx.Context(), itemName, category)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"donors": entries}})
}
