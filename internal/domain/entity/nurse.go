package entity

import "time"

// Nurse represents health-center nursing staff. Like doctors, seed rows may
// exist without a linked user account.
type Nurse struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        *int      `gorm:"index" json:"user_id,omitempty"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	LicenseNumber string    `gorm:"type:varchar(50)" json:"license_number,omitempty"`
	Station       string    `gorm:"type:varchar(100)" json:"station,omitempty"`
	Shift         string    `gorm:"type:varchar(20)" json:"shift,omitempty"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsOnDuty      bool      `gorm:"not null;default:false;index" json:"is_on_duty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Nurse) TableName() string {
	return "nurses"
}
