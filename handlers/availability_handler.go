package handlers

import (
	"strconv"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WindowRequest struct {
	DayOfWeek   int     `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     string  `json:"end_time" validate:"required"`
	ValidFrom   *string `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil  *string `json:"valid_until,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
	IsOnline    bool    `json:"is_online,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (req *WindowRequest) toInput() (services.WindowInput, error) {
	start, err := parseClock(req.StartTime)
	if err != nil {
		return services.WindowInput{}, err
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return services.WindowInput{}, err
	}

	in := services.WindowInput{
		DayOfWeek:   req.DayOfWeek,
		StartMinute: start,
		EndMinute:   end,
		IsRecurring: true,
		IsOnline:    req.IsOnline,
		IsActive:    true,
	}
	if req.IsRecurring != nil {
		in.IsRecurring = *req.IsRecurring
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		from, err := time.Parse("2006-01-02", *req.ValidFrom)
		if err != nil {
			return services.WindowInput{}, err
		}
		in.ValidFrom = &from
	}
	if req.ValidUntil != nil {
		until, err := time.Parse("2006-01-02", *req.ValidUntil)
		if err != nil {
			return services.WindowInput{}, err
		}
		in.ValidUntil = &until
	}
	return in, nil
}

func CreateAvailabilityWindow(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req WindowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Times must be HH:MM and dates YYYY-MM-DD"})
	}

	window, err := services.AddWindow(database.DB, actor, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(window)
}

func UpdateAvailabilityWindow(c *fiber.Ctx) error {
	actor := currentActor(c)
	windowID, err := uuid.Parse(c.Params("windowId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid window id"})
	}

	var req WindowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Times must be HH:MM and dates YYYY-MM-DD"})
	}

	window, err := services.UpdateWindow(database.DB, actor, windowID, in)
	if err != nil {
		return err
	}
	return c.JSON(window)
}

func DeleteAvailabilityWindow(c *fiber.Ctx) error {
	actor := currentActor(c)
	windowID, err := uuid.Parse(c.Params("windowId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid window id"})
	}

	if err := services.RemoveWindow(database.DB, actor, windowID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Availability window removed"})
}

func GetMyAvailability(c *fiber.Ctx) error {
	actor := currentActor(c)
	return listWindows(c, actor.ID)
}

func GetProfessorAvailability(c *fiber.Ctx) error {
	professorID, err := uuid.Parse(c.Params("professorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid professor id"})
	}
	return listWindows(c, professorID)
}

func listWindows(c *fiber.Ctx, professorID uuid.UUID) error {
	var day *int
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day must be an integer"})
		}
		day = &parsed
	}

	windows, err := services.QueryWindows(database.DB, professorID, day)
	if err != nil {
		return err
	}
	return c.JSON(windows)
}
