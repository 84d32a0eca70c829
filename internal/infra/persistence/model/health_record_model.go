package model

import "time"

// HealthRecordModel mirrors the 'health_records' table.
type HealthRecordModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	PetID     int64   `gorm:"not null;index"`
	VetID     int64   `gorm:"not null;index"`
	ApptID    int64   `gorm:"not null"`
	Diagnosis *string `gorm:"type:varchar(1000)"`
	Treatment *string `gorm:"type:varchar(1000)"`
	Notes     *string `gorm:"type:varchar(1000)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthRecordModel) TableName() string {
	return "health_records"
}
