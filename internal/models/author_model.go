package models

import "time"

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;index" json:"name"`
	Qualifier string    `gorm:"size:255" json:"qualifier,omitempty"`
	ImageURL  string    `gorm:"size:500" json:"imageUrl,omitempty"`
	Status    Status    `gorm:"type:moderation_status;default:'PENDING';index" json:"status"`
	Quotes    []Quote   `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
