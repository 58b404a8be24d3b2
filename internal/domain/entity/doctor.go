package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a health-center physician. Seed rows may exist without a
// linked user account; doctors who self-register get both rows.
type Doctor struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        *int            `gorm:"index" json:"user_id,omitempty"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	LicenseNumber string          `gorm:"type:varchar(50);uniqueIndex" json:"license_number"`
	Specialty     string          `gorm:"type:varchar(100)" json:"specialty"`
	Email         string          `gorm:"type:varchar(100)" json:"email,omitempty"`
	Phone         string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Avatar        string          `gorm:"type:varchar(10)" json:"avatar,omitempty"`
	Rating        decimal.Decimal `gorm:"type:decimal(2,1);default:0" json:"rating"`
	ReviewsCount  int             `gorm:"default:0" json:"reviews_count"`
	IsAvailable   bool            `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availabilities,omitempty"`
	Appointments   []Appointment        `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	Experiences    []ProfessionalExperience `gorm:"foreignKey:DoctorID" json:"experiences,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
