package handlers

import (
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeedbackRequest struct {
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment"`
	TeachingQuality int    `json:"teaching_quality" validate:"required,min=1,max=5"`
	Punctuality     int    `json:"punctuality" validate:"required,min=1,max=5"`
	Communication   int    `json:"communication" validate:"required,min=1,max=5"`
	Patience        int    `json:"patience" validate:"required,min=1,max=5"`
}

func SubmitFeedback(c *fiber.Ctx) error {
	actor := currentActor(c)
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	feedback, err := services.SubmitFeedback(database.DB, time.Now(), actor, sessionID, services.FeedbackInput{
		Rating:          req.Rating,
		Comment:         req.Comment,
		TeachingQuality: req.TeachingQuality,
		Punctuality:     req.Punctuality,
		Communication:   req.Communication,
		Patience:        req.Patience,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// GetProfessorReviews is the public review feed for a professor page.
func GetProfessorReviews(c *fiber.Ctx) error {
	professorID := c.Params("professorId")

	var reviews []models.Feedback
	database.DB.Preload("Author").
		Where("professor_id = ?", professorID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}

func GetMyReviews(c *fiber.Ctx) error {
	actor := currentActor(c)

	var reviews []models.Feedback
	database.DB.Preload("Author").
		Where("professor_id = ?", actor.ID).
		Order("created_at desc").
		Find(&reviews)

	return c.JSON(reviews)
}
