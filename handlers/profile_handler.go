package handlers

import (
	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AddChildRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	BirthYear *int   `json:"birth_year,omitempty"`
}

func AddChild(c *fiber.Ctx) error {
	actor := currentActor(c)
	if actor.Role != models.RoleParent {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only parents can register children"})
	}

	var req AddChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	child := models.Child{
		ParentID:  actor.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthYear: req.BirthYear,
	}
	if err := database.DB.Create(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register child"})
	}

	return c.Status(fiber.StatusCreated).JSON(child)
}

func GetMyChildren(c *fiber.Ctx) error {
	actor := currentActor(c)

	var children []models.Child
	database.DB.Where("parent_id = ?", actor.ID).Order("created_at asc").Find(&children)

	return c.JSON(children)
}

func RemoveChild(c *fiber.Ctx) error {
	actor := currentActor(c)
	childID, err := uuid.Parse(c.Params("childId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid child id"})
	}

	var child models.Child
	if err := database.DB.First(&child, "id = ?", childID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Child not found"})
	}
	if child.ParentID != actor.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This child is not registered under your account"})
	}

	if err := database.DB.Delete(&child).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove child"})
	}
	return c.JSON(fiber.Map{"message": "Child removed"})
}
