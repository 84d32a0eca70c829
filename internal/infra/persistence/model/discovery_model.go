package model

import "time"

// DiscoveryModel mirrors the 'discoveries' table of adoptable listings.
type DiscoveryModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Description  *string `gorm:"type:text"`
	Category     *string `gorm:"type:varchar(50)"`
	Requirements *string `gorm:"type:text"`
	Location     *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscoveryModel) TableName() string {
	return "discoveries"
}
