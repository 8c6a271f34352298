package handlers

import (
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProfessorID     string  `json:"professor_id" validate:"required,uuid"`
	SubjectID       string  `json:"subject_id" validate:"required,uuid"`
	LevelID         string  `json:"level_id" validate:"required,uuid"`
	ChildID         *string `json:"child_id,omitempty" validate:"omitempty,uuid"`
	ScheduledAt     string  `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int     `json:"duration_minutes" validate:"required"`
	Notes           *string `json:"notes,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)
	in := services.CreateBookingInput{
		ProfessorID:     uuid.MustParse(req.ProfessorID),
		SubjectID:       uuid.MustParse(req.SubjectID),
		LevelID:         uuid.MustParse(req.LevelID),
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.ChildID != nil {
		childID := uuid.MustParse(*req.ChildID)
		in.ChildID = &childID
	}

	booking, err := services.CreateBooking(database.DB, time.Now(), actor, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	actor := currentActor(c)

	var bookings []models.Booking
	database.DB.
		Preload("Professor.User").Preload("Subject").Preload("Level").Preload("Child").
		Where("parent_id = ? OR student_id = ?", actor.ID, actor.ID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetMyProfessorBookings(c *fiber.Ctx) error {
	actor := currentActor(c)

	var bookings []models.Booking
	database.DB.
		Preload("Parent").Preload("Student").Preload("Child").Preload("Subject").Preload("Level").
		Where("professor_id = ?", actor.ID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func ConfirmBooking(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.ConfirmBooking(database.DB, time.Now(), actor, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

func CompleteBooking(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CompleteBooking(database.DB, time.Now(), actor, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

func CancelBooking(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req CancelBookingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	booking, err := services.CancelBooking(database.DB, time.Now(), actor, bookingID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

type EditBookingRequest struct {
	ChildID         *string `json:"child_id,omitempty" validate:"omitempty,uuid"`
	SubjectID       *string `json:"subject_id,omitempty" validate:"omitempty,uuid"`
	LevelID         *string `json:"level_id,omitempty" validate:"omitempty,uuid"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func EditBooking(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req EditBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	in := services.EditBookingInput{
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.ChildID != nil {
		id := uuid.MustParse(*req.ChildID)
		in.ChildID = &id
	}
	if req.SubjectID != nil {
		id := uuid.MustParse(*req.SubjectID)
		in.SubjectID = &id
	}
	if req.LevelID != nil {
		id := uuid.MustParse(*req.LevelID)
		in.LevelID = &id
	}

	booking, err := services.EditBooking(database.DB, actor, bookingID, in)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}
