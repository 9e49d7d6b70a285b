package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	Status    Status    `gorm:"type:moderation_status;default:'PENDING';index" json:"status"`
	Quotes    []Quote   `gorm:"many2many:quote_categories" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
