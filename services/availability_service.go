package services

import (
	"errors"
	"time"

	"github.com/Aristide-Dev/Timmi-sub003/apperrors"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const minutesPerDay = 24 * 60

// WindowInput carries the mutable fields of an availability window. Times
// are minutes from midnight; windows spanning midnight are not supported.
type WindowInput struct {
	DayOfWeek   int
	StartMinute int
	EndMinute   int
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	IsRecurring bool
	IsOnline    bool
	IsActive    bool
}

func validateWindowInput(in WindowInput) error {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return apperrors.Validation("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	}
	if in.StartMinute < 0 || in.EndMinute > minutesPerDay {
		return apperrors.Validation("window times must fall within a single day")
	}
	if in.StartMinute >= in.EndMinute {
		return apperrors.Validation("window start time must be before end time")
	}
	if in.ValidFrom != nil && in.ValidUntil != nil && in.ValidUntil.Before(*in.ValidFrom) {
		return apperrors.Validation("valid_until must not precede valid_from")
	}
	return nil
}

// windowsOverlap tests two half-open [start,end) ranges.
func windowsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// checkWindowOverlap compares a candidate range against every other active
// window of the professor on that day. Callers must hold the professor row
// lock so two writers cannot both pass against stale data.
func checkWindowOverlap(tx *gorm.DB, professorID uuid.UUID, day, start, end int, excludeID uuid.UUID) error {
	var others []models.AvailabilityWindow
	err := tx.Where("professor_id = ? AND day_of_week = ? AND is_active = ? AND id <> ?",
		professorID, day, true, excludeID).
		Order("start_minute asc").
		Find(&others).Error
	if err != nil {
		return apperrors.Transient(err)
	}

	for _, other := range others {
		if windowsOverlap(start, end, other.StartMinute, other.EndMinute) {
			return apperrors.Conflict(other.ID,
				"window overlaps existing availability %s (%02d:%02d-%02d:%02d)",
				other.ID, other.StartMinute/60, other.StartMinute%60, other.EndMinute/60, other.EndMinute%60)
		}
	}
	return nil
}

// lockProfessor takes a FOR UPDATE lock on the professor row, serializing
// all window mutations for that professor.
func lockProfessor(tx *gorm.DB, professorID uuid.UUID) (*models.Professor, error) {
	var professor models.Professor
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&professor, "user_id = ?", professorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("professor profile not found")
		}
		return nil, apperrors.Transient(err)
	}
	return &professor, nil
}

func AddWindow(db *gorm.DB, actor Actor, in WindowInput) (*models.AvailabilityWindow, error) {
	if !actor.IsProfessor() {
		return nil, apperrors.Authorization("only professors manage availability windows")
	}
	if err := validateWindowInput(in); err != nil {
		return nil, err
	}

	var window models.AvailabilityWindow
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockProfessor(tx, actor.ID); err != nil {
			return err
		}
		if err := checkWindowOverlap(tx, actor.ID, in.DayOfWeek, in.StartMinute, in.EndMinute, uuid.Nil); err != nil {
			return err
		}

		window = models.AvailabilityWindow{
			ProfessorID: actor.ID,
			DayOfWeek:   in.DayOfWeek,
			StartMinute: in.StartMinute,
			EndMinute:   in.EndMinute,
			ValidFrom:   in.ValidFrom,
			ValidUntil:  in.ValidUntil,
			IsRecurring: in.IsRecurring,
			IsOnline:    in.IsOnline,
			IsActive:    in.IsActive,
		}
		if err := tx.Create(&window).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &window, nil
}

func UpdateWindow(db *gorm.DB, actor Actor, windowID uuid.UUID, in WindowInput) (*models.AvailabilityWindow, error) {
	if !actor.IsProfessor() {
		return nil, apperrors.Authorization("only professors manage availability windows")
	}
	if err := validateWindowInput(in); err != nil {
		return nil, err
	}

	var window models.AvailabilityWindow
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockProfessor(tx, actor.ID); err != nil {
			return err
		}

		if err := tx.First(&window, "id = ?", windowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("availability window not found")
			}
			return apperrors.Transient(err)
		}
		if window.ProfessorID != actor.ID {
			return apperrors.Authorization("this availability window belongs to another professor")
		}

		if in.IsActive {
			if err := checkWindowOverlap(tx, actor.ID, in.DayOfWeek, in.StartMinute, in.EndMinute, window.ID); err != nil {
				return err
			}
		}

		window.DayOfWeek = in.DayOfWeek
		window.StartMinute = in.StartMinute
		window.EndMinute = in.EndMinute
		window.ValidFrom = in.ValidFrom
		window.ValidUntil = in.ValidUntil
		window.IsRecurring = in.IsRecurring
		window.IsOnline = in.IsOnline
		window.IsActive = in.IsActive
		if err := tx.Save(&window).Error; err != nil {
			return apperrors.Transient(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// RemoveWindow deletes a window unconditionally. Bookings already made
// against the slot are untouched: windows are a soft signal consulted by
// the payer before booking, not a hard lock.
func RemoveWindow(db *gorm.DB, actor Actor, windowID uuid.UUID) error {
	if !actor.IsProfessor() {
		return apperrors.Authorization("only professors manage availability windows")
	}

	var window models.AvailabilityWindow
	if err := db.First(&window, "id = ?", windowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("availability window not found")
		}
		return apperrors.Transient(err)
	}
	if window.ProfessorID != actor.ID {
		return apperrors.Authorization("this availability window belongs to another professor")
	}

	if err := db.Delete(&window).Error; err != nil {
		return apperrors.Transient(err)
	}
	return nil
}

// QueryWindows lists a professor's windows ordered by day and start time.
// A non-nil day restricts the result to that day of week.
func QueryWindows(db *gorm.DB, professorID uuid.UUID, day *int) ([]models.AvailabilityWindow, error) {
	query := db.Where("professor_id = ?", professorID)
	if day != nil {
		if *day < 0 || *day > 6 {
			return nil, apperrors.Validation("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
		}
		query = query.Where("day_of_week = ?", *day)
	}

	var windows []models.AvailabilityWindow
	if err := query.Order("day_of_week asc, start_minute asc").Find(&windows).Error; err != nil {
		return nil, apperrors.Transient(err)
	}
	return windows, nil
}
