package handlers

import (
	"time"

	config "github.com/Aristide-Dev/Timmi-sub003/configs"
	"github.com/Aristide-Dev/Timmi-sub003/database"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/Aristide-Dev/Timmi-sub003/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := 50

	var users []models.User
	database.DB.Order("created_at desc").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&users)

	return c.JSON(users)
}

type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func SetUserActive(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req SetUserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = req.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(user)
}

func ListProfessorApplications(c *fiber.Ctx) error {
	var applications []models.Professor
	database.DB.Preload("User").
		Where("status = ?", models.ProfessorPending).
		Order("created_at asc").
		Find(&applications)

	return c.JSON(applications)
}

type ReviewApplicationRequest struct {
	Approve bool `json:"approve"`
}

// ReviewProfessorApplication approves or rejects a pending application.
// Approval also flips the user's role to professor.
func ReviewProfessorApplication(c *fiber.Ctx) error {
	professorID, err := uuid.Parse(c.Params("professorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid professor id"})
	}

	var req ReviewApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var professor models.Professor
	if err := database.DB.First(&professor, "user_id = ?", professorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if professor.Status != models.ProfessorPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Application has already been reviewed"})
	}

	if req.Approve {
		professor.Status = models.ProfessorApproved
	} else {
		professor.Status = models.ProfessorRejected
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&professor).Error; err != nil {
			return err
		}
		if req.Approve {
			return tx.Model(&models.User{}).
				Where("id = ?", professor.UserID).
				Update("role", models.RoleProfessor).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to review application"})
	}

	return c.JSON(professor)
}

func ListAllBookings(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Parent").Preload("Student").Preload("Professor.User").
		Preload("Subject").Preload("Level")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	query.Order("created_at desc").Limit(200).Find(&bookings)

	return c.JSON(bookings)
}

type AdminCancelRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func AdminCancelBooking(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req AdminCancelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.CancelBooking(database.DB, time.Now(), actor, bookingID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

type PaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid refunded"`
}

// SetBookingPaymentStatus records the outcome reported by the external
// payment collaborator.
func SetBookingPaymentStatus(c *fiber.Ctx) error {
	actor := currentActor(c)
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := services.SetPaymentStatus(database.DB, actor, bookingID, models.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateSubject(c *fiber.Ctx) error {
	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subject := models.Subject{Name: req.Name, IsActive: true}
	if err := database.DB.Create(&subject).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Subject already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}

type CreateLevelRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

func CreateLevel(c *fiber.Ctx) error {
	var req CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	level := models.Level{Name: req.Name, SortOrder: req.SortOrder}
	if err := database.DB.Create(&level).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Level already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(level)
}

func GetPlatformSettings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"commission_rate":            config.CommissionRate(),
		"session_cancel_grace_hours": config.SessionCancelGraceHours(),
		"min_booking_minutes":        services.MinBookingMinutes,
		"max_booking_minutes":        services.MaxBookingMinutes,
	})
}
