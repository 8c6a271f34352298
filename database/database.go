package database

import (
	"fmt"
	"log"

	config "github.com/Aristide-Dev/Timmi-sub003/configs"
	"github.com/Aristide-Dev/Timmi-sub003/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Professor{},
		&models.Child{},
		&models.Subject{},
		&models.Level{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.Session{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	applyConstraints()
	fmt.Println("✅ Database migration successful")
}

// applyConstraints adds the storage-layer invariants AutoMigrate cannot
// express. The exclusion constraint is the backstop for overlapping windows
// committed by concurrent writers; the checks back the enum and range
// invariants the services enforce first.
func applyConstraints() {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,

		`ALTER TABLE availability_windows DROP CONSTRAINT IF EXISTS availability_windows_time_order`,
		`ALTER TABLE availability_windows ADD CONSTRAINT availability_windows_time_order
		   CHECK (start_minute >= 0 AND end_minute <= 1440 AND start_minute < end_minute)`,

		`ALTER TABLE availability_windows DROP CONSTRAINT IF EXISTS availability_windows_no_overlap`,
		`ALTER TABLE availability_windows ADD CONSTRAINT availability_windows_no_overlap
		   EXCLUDE USING gist (
		     professor_id WITH =,
		     day_of_week WITH =,
		     int4range(start_minute, end_minute) WITH &&
		   ) WHERE (is_active)`,

		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check
		   CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled'))`,

		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_payment_status_check`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_payment_status_check
		   CHECK (payment_status IN ('pending', 'paid', 'refunded'))`,

		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_one_payer`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_one_payer
		   CHECK ((parent_id IS NULL) <> (student_id IS NULL))`,

		`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_amounts`,
		`ALTER TABLE bookings ADD CONSTRAINT bookings_amounts
		   CHECK (total_price >= 0 AND commission_amount >= 0 AND payout_amount >= 0
		     AND commission_amount + payout_amount = total_price)`,

		`ALTER TABLE sessions DROP CONSTRAINT IF EXISTS sessions_status_check`,
		`ALTER TABLE sessions ADD CONSTRAINT sessions_status_check
		   CHECK (status IN ('scheduled', 'in_progress', 'completed', 'cancelled'))`,

		`ALTER TABLE feedbacks DROP CONSTRAINT IF EXISTS feedbacks_rating_range`,
		`ALTER TABLE feedbacks ADD CONSTRAINT feedbacks_rating_range
		   CHECK (rating BETWEEN 1 AND 5
		     AND teaching_quality BETWEEN 1 AND 5
		     AND punctuality BETWEEN 1 AND 5
		     AND communication BETWEEN 1 AND 5
		     AND patience BETWEEN 1 AND 5)`,
	}

	for _, stmt := range stmts {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatalf("🔥 Failed to apply database constraint: %v", err)
		}
	}
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
