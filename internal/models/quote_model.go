package models

import "time"

type Quote struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Content       string     `gorm:"uniqueIndex;size:1000" json:"content"`
	Language      string     `gorm:"size:50" json:"language"`
	AuthorID      uint       `gorm:"index" json:"authorId"`
	Author        *Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories    []Category `gorm:"many2many:quote_categories" json:"categories,omitempty"`
	SubmittedByID *uint      `gorm:"index" json:"submittedById,omitempty"`
	SubmittedBy   *User      `gorm:"foreignKey:SubmittedByID" json:"submittedBy,omitempty"`
	Status        Status     `gorm:"type:moderation_status;default:'PENDING';index" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"-"`
}
