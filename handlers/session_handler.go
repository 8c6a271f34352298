package handlers

import (
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetSession(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.Session
	if err := database.DB.Preload("Booking").First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	booking := session.Booking
	if !actor.IsPayer(&booking) && booking.ProfessorID != actor.ID && !actor.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not a party to this session"})
	}
	return c.JSON(session)
}

type MeetingLinkRequest struct {
	MeetingLink string `json:"meeting_link" validate:"required,url"`
}

func SetMeetingLink(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req MeetingLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := services.SetMeetingLink(database.DB, actor, sessionID, req.MeetingLink)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

type SessionNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

func UpdateSessionNotes(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req SessionNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := services.UpdateSessionNotes(database.DB, actor, sessionID, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func StartSession(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	session, err := services.StartSession(database.DB, actor, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

func CancelSession(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req CancelBookingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}

	session, err := services.CancelSession(database.DB, time.Now(), actor, sessionID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(session)
}
