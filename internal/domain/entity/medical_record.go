package entity

import "time"

// MedicalRecordStatus represents the lifecycle state of a record entry.
// Archive is the reversible soft delete; purge removes the row and is only
// accepted for archived entries.
type MedicalRecordStatus string

const (
	MedicalRecordStatusActive   MedicalRecordStatus = "active"
	MedicalRecordStatusArchived MedicalRecordStatus = "archived"
)

// Medical record entry types
const (
	MedicalRecordTypeAllergy    = "allergy"
	MedicalRecordTypeMedication = "medication"
	MedicalRecordTypeCondition  = "condition"
)

// MedicalRecord is a typed health entry (allergy, medication, condition)
// owned by a single user.
type MedicalRecord struct {
	ID            int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int                 `gorm:"not null;index" json:"user_id"`
	Type          string              `gorm:"type:varchar(20);not null;index" json:"type"`
	Name          string              `gorm:"type:varchar(100);not null" json:"name"`
	Description   string              `gorm:"type:text" json:"description,omitempty"`
	Severity      string              `gorm:"type:varchar(20)" json:"severity,omitempty"`
	DiagnosedDate *time.Time          `gorm:"type:date" json:"diagnosed_date,omitempty"`
	Status        MedicalRecordStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// IsValidMedicalRecordType reports whether t is a supported entry type.
func IsValidMedicalRecordType(t string) bool {
	switch t {
	case MedicalRecordTypeAllergy, MedicalRecordTypeMedication, MedicalRecordTypeCondition:
		return true
	}
	return false
}
