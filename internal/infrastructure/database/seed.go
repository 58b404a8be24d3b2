package database

import (
	"fmt"

	"careconnect-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed loads the baseline health-center staff when the doctors table is
// empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	doctors := []entity.Doctor{
		{
			Name:          "Sarah Bennani",
			LicenseNumber: "MD-2201",
			Specialty:     "General Medicine",
			Email:         "s.bennani@aui.ma",
			Phone:         "+212 535 86 2001",
			Avatar:        "SB",
			Rating:        decimal.NewFromFloat(4.8),
			ReviewsCount:  124,
			IsAvailable:   true,
		},
		{
			Name:          "Youssef El Fassi",
			LicenseNumber: "MD-2202",
			Specialty:     "Sports Medicine",
			Email:         "y.elfassi@aui.ma",
			Phone:         "+212 535 86 2002",
			Avatar:        "YE",
			Rating:        decimal.NewFromFloat(4.6),
			ReviewsCount:  87,
			IsAvailable:   true,
		},
		{
			Name:          "Leila Tazi",
			LicenseNumber: "MD-2203",
			Specialty:     "Mental Health",
			Email:         "l.tazi@aui.ma",
			Phone:         "+212 535 86 2003",
			Avatar:        "LT",
			Rating:        decimal.NewFromFloat(4.9),
			ReviewsCount:  156,
			IsAvailable:   true,
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range doctors {
			if err := tx.Create(&doctors[i]).Error; err != nil {
				return fmt.Errorf("failed to seed doctor %s: %w", doctors[i].Name, err)
			}

			// Standard Monday-Friday working week.
			for day := 0; day < 5; day++ {
				window := entity.DoctorAvailability{
					DoctorID:            doctors[i].ID,
					DayOfWeek:           day,
					StartTime:           "09:00 AM",
					EndTime:             "05:00 PM",
					SlotDurationMinutes: 30,
					IsActive:            true,
				}
				if err := tx.Create(&window).Error; err != nil {
					return fmt.Errorf("failed to seed availability: %w", err)
				}
			}
		}

		nurses := []entity.Nurse{
			{
				Name:          "Fatima Zahra Alaoui",
				LicenseNumber: "RN-3301",
				Station:       "Main Desk",
				Shift:         "day",
				Phone:         "+212 535 86 3001",
				IsOnDuty:      true,
			},
			{
				Name:          "Karim Berrada",
				LicenseNumber: "RN-3302",
				Station:       "Emergency Bay",
				Shift:         "night",
				Phone:         "+212 535 86 3002",
				IsOnDuty:      false,
			},
		}
		for i := range nurses {
			if err := tx.Create(&nurses[i]).Error; err != nil {
				return fmt.Errorf("failed to seed nurse %s: %w", nurses[i].Name, err)
			}
		}

		logrus.Infof("Seeded %d doctors and %d nurses", len(doctors), len(nurses))
		return nil
	})
}
