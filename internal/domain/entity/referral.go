package entity

import "time"

// Referral statuses
const (
	ReferralStatusPending   = "pending"
	ReferralStatusAccepted  = "accepted"
	ReferralStatusCompleted = "completed"
)

// Referral sends a patient from a health-center doctor to an external
// specialist or facility.
type Referral struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;index" json:"doctor_id"`
	UserID       int       `gorm:"not null;index" json:"user_id"`
	Specialist   string    `gorm:"type:varchar(100);not null" json:"specialist"`
	Facility     string    `gorm:"type:varchar(100)" json:"facility,omitempty"`
	Reason       string    `gorm:"type:text;not null" json:"reason"`
	Urgency      string    `gorm:"type:varchar(20);default:'routine'" json:"urgency"`
	ReferralDate time.Time `gorm:"type:date;not null" json:"referral_date"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Referral) TableName() string {
	return "referrals"
}
