package handlers

import (
	"errors"

	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessorApplicationRequest struct {
	Headline   string `json:"headline" validate:"required"`
	Bio        string `json:"bio" validate:"required"`
	HourlyRate int64  `json:"hourly_rate" validate:"required,gt=0"`
}

// ApplyToBeAProfessor creates a pending professor profile for moderation.
func ApplyToBeAProfessor(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req ProfessorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Professor
	err := database.DB.Where("user_id = ?", actor.ID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already submitted an application."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	application := models.Professor{
		UserID:     actor.ID,
		Headline:   &req.Headline,
		Bio:        &req.Bio,
		HourlyRate: req.HourlyRate,
	}
	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create application"})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

type UpdateProfessorProfileRequest struct {
	Headline   *string `json:"headline,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	HourlyRate *int64  `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
}

// UpdateMyProfessorProfile edits the profile. Rate changes never touch
// bookings already created; they snapshot the rate at creation.
func UpdateMyProfessorProfile(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req UpdateProfessorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var professor models.Professor
	if err := database.DB.Where("user_id = ?", actor.ID).First(&professor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}

	if req.Headline != nil {
		professor.Headline = req.Headline
	}
	if req.Bio != nil {
		professor.Bio = req.Bio
	}
	if req.HourlyRate != nil {
		professor.HourlyRate = *req.HourlyRate
	}

	if err := database.DB.Save(&professor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(professor)
}

func GetMyProfessorProfile(c *fiber.Ctx) error {
	actor := currentActor(c)

	var professor models.Professor
	err := database.DB.Preload("Subjects").Preload("Levels").Preload("User").
		Where("user_id = ?", actor.ID).First(&professor).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}
	return c.JSON(professor)
}

type AttachSubjectRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
}

func AddSubjectToProfile(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req AttachSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var professor models.Professor
	if err := database.DB.Where("user_id = ?", actor.ID).First(&professor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}

	var subject models.Subject
	if err := database.DB.Where("id = ?", req.SubjectID).First(&subject).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	if err := database.DB.Model(&professor).Association("Subjects").Append(&subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject added to profile"})
}

func RemoveSubjectFromProfile(c *fiber.Ctx) error {
	actor := currentActor(c)
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	var professor models.Professor
	if err := database.DB.Where("user_id = ?", actor.ID).First(&professor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}

	subject := models.Subject{ID: subjectID}
	if err := database.DB.Model(&professor).Association("Subjects").Delete(&subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove subject"})
	}
	return c.JSON(fiber.Map{"message": "Subject removed from profile"})
}

type AttachLevelRequest struct {
	LevelID string `json:"level_id" validate:"required,uuid"`
}

func AddLevelToProfile(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req AttachLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var professor models.Professor
	if err := database.DB.Where("user_id = ?", actor.ID).First(&professor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}

	var level models.Level
	if err := database.DB.Where("id = ?", req.LevelID).First(&level).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Level not found"})
	}

	if err := database.DB.Model(&professor).Association("Levels").Append(&level); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add level"})
	}
	return c.JSON(fiber.Map{"message": "Level added to profile"})
}

func RemoveLevelFromProfile(c *fiber.Ctx) error {
	actor := currentActor(c)
	levelID, err := uuid.Parse(c.Params("levelId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid level id"})
	}

	var professor models.Professor
	if err := database.DB.Where("user_id = ?", actor.ID).First(&professor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor profile not found"})
	}

	level := models.Level{ID: levelID}
	if err := database.DB.Model(&professor).Association("Levels").Delete(&level); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove level"})
	}
	return c.JSON(fiber.Map{"message": "Level removed from profile"})
}

func ListActiveProfessors(c *fiber.Ctx) error {
	var professors []models.Professor
	database.DB.Preload("User").Preload("Subjects").Preload("Levels").
		Where("status = ?", models.ProfessorApproved).
		Order("avg_rating desc").
		Find(&professors)

	return c.JSON(professors)
}

func GetProfessorProfile(c *fiber.Ctx) error {
	professorID := c.Params("professorId")

	var professor models.Professor
	err := database.DB.Preload("User").Preload("Subjects").Preload("Levels").
		Where("user_id = ? AND status = ?", professorID, models.ProfessorApproved).
		First(&professor).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Professor not found"})
	}
	return c.JSON(professor)
}

func ListSubjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	database.DB.Where("is_active = ?", true).Order("name asc").Find(&subjects)
	return c.JSON(subjects)
}

func ListLevels(c *fiber.Ctx) error {
	var levels []models.Level
	database.DB.Order("sort_order asc").Find(&levels)
	return c.JSON(levels)
}
