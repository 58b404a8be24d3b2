package entity

import "time"

// EmergencyContact is the single designated contact for a user (1:1).
type EmergencyContact struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int       `gorm:"not null;uniqueIndex" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Relationship string    `gorm:"type:varchar(50);not null" json:"relationship"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email        string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

// EmergencyRequestStatus represents the state of an emergency request
type EmergencyRequestStatus string

const (
	EmergencyStatusActive   EmergencyRequestStatus = "active"
	EmergencyStatusResolved EmergencyRequestStatus = "resolved"
)

// Emergency priorities
const (
	EmergencyPriorityLow      = "low"
	EmergencyPriorityMedium   = "medium"
	EmergencyPriorityHigh     = "high"
	EmergencyPriorityCritical = "critical"
)

// EmergencyRequest is a logged incident. Once resolved only the status and
// resolved timestamp have been touched; the incident body is immutable.
type EmergencyRequest struct {
	ID          int                    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int                    `gorm:"not null;index" json:"user_id"`
	Type        string                 `gorm:"type:varchar(50)" json:"type"`
	Description string                 `gorm:"type:text;not null" json:"description"`
	Location    string                 `gorm:"type:varchar(200)" json:"location,omitempty"`
	Latitude    *float64               `json:"latitude,omitempty"`
	Longitude   *float64               `json:"longitude,omitempty"`
	Status      EmergencyRequestStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Priority    string                 `gorm:"type:varchar(20);not null;default:'high'" json:"priority"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"created_at"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EmergencyRequest) TableName() string {
	return "emergency_requests"
}

// IsResolved checks if the request has been resolved
func (e *EmergencyRequest) IsResolved() bool {
	return e.Status == EmergencyStatusResolved
}
