package entity

import "time"

// Visit is an immutable historical record of a consultation. Rows come from
// seed data or from completing an appointment; nothing updates them after
// creation.
type Visit struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int       `gorm:"not null;index" json:"user_id"`
	DoctorID  int       `gorm:"not null;index" json:"doctor_id"`
	VisitDate time.Time `gorm:"type:date;not null;index" json:"visit_date"`
	TimeStart string    `gorm:"type:varchar(10)" json:"time_start"`
	TimeEnd   string    `gorm:"type:varchar(10)" json:"time_end"`
	Diagnosis string    `gorm:"type:varchar(200)" json:"diagnosis,omitempty"`
	Type      string    `gorm:"type:varchar(50)" json:"type,omitempty"`
	Location  string    `gorm:"type:varchar(100)" json:"location,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	Status    string    `gorm:"type:varchar(20);default:'completed'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}
