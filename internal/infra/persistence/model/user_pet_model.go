// Package model holds the GORM-specific structs mirroring the database
// tables. The domain layer never sees these types; the postgres package maps
// them to and from domain entities.
package model

import "time"

// UserPetModel mirrors the 'user_pets' table. PostgreSQL assigns IDs from the
// table's identity sequence.
type UserPetModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Phone        *string `gorm:"type:varchar(20)"`
	Address      *string `gorm:"type:varchar(255)"`
	Role         string  `gorm:"type:varchar(20);not null"`
	Avatar       *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPetModel) TableName() string {
	return "user_pets"
}
