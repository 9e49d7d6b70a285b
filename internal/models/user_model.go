package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// ParseRole matches case-insensitively against the role enum.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(s)) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// User rows are never hard-deleted; quotes keep referencing the anonymized
// row after a soft delete.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100" json:"username"`
	Password  string    `gorm:"size:255" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'USER'" json:"role,omitempty"`
	IsDeleted bool      `gorm:"default:false" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
