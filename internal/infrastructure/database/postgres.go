package database

import (
	"fmt"

	"careconnect-backend/config"
	"careconnect-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Africa/Casablanca",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates the schema and the partial indexes gorm tags cannot
// express.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{},
		&entity.Nurse{},
		&entity.DoctorAvailability{},
		&entity.Appointment{},
		&entity.Visit{},
		&entity.MedicalRecord{},
		&entity.EmergencyContact{},
		&entity.EmergencyRequest{},
		&entity.ProfessionalExperience{},
		&entity.Prescription{},
		&entity.Referral{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// One live booking per (doctor, date, time). Cancelled rows are
	// excluded so a freed slot can be rebooked.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_doctor_slot
		ON appointments (doctor_id, appointment_date, appointment_time)
		WHERE status <> 'cancelled'
	`).Error
	if err != nil {
		return fmt.Errorf("failed to create booking slot index: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}
