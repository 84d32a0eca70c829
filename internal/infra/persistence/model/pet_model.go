package model

import "time"

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64   `gorm:"not null;index"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Species   *string `gorm:"type:varchar(50)"`
	Breed     *string `gorm:"type:varchar(50)"`
	Age       *int32
	Gender    *string `gorm:"type:varchar(10)"`
	PhotoURL  *string `gorm:"column:photo_url;type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
