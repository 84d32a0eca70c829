package model

import "time"

// AppointmentModel mirrors the 'appointments' table. ApptTime is indexed
// together with OwnerID for the upcoming-appointments query.
type AppointmentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PetID     int64     `gorm:"not null;index"`
	OwnerID   int64     `gorm:"not null;index:idx_appointments_owner_time"`
	VetID     int64     `gorm:"not null;index"`
	ApptTime  time.Time `gorm:"not null;index:idx_appointments_owner_time"`
	Status    *string   `gorm:"type:varchar(20)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
