// Package moderation centralizes the status lifecycle shared by quotes,
// authors and categories, and the visibility rules derived from it.
package moderation

import (
	"fmt"

	"github.com/quotery/quotes-api/internal/models"
	"gorm.io/gorm"
)

// InitialStatus is the status a newly created resource gets. Auto-approve
// deployments bypass moderation entirely.
func InitialStatus(autoApprove bool) models.Status {
	if autoApprove {
		return models.StatusApproved
	}
	return models.StatusPending
}

// RequestedStatus validates an explicit status query parameter. The value
// is validated for every caller even though only admins get to apply it.
func RequestedStatus(raw string) (*models.Status, error) {
	if raw == "" {
		return nil, nil
	}
	status, ok := models.ParseStatus(raw)
	if !ok {
		return nil, fmt.Errorf("invalid status")
	}
	return &status, nil
}

// ListVisibility is the implicit filter on every listing: non-admins see
// only APPROVED rows, admins see everything unless they narrow by status.
// A nil result means unrestricted.
func ListVisibility(isAdmin bool, requested *models.Status) []models.Status {
	if !isAdmin {
		return []models.Status{models.StatusApproved}
	}
	if requested != nil {
		return []models.Status{*requested}
	}
	return nil
}

// FetchVisibility governs single-resource fetches. Deliberately wider than
// ListVisibility: a submitter holding the direct link can still see a
// pending row, while rejected rows stay hidden from non-admins.
func FetchVisibility(isAdmin bool) []models.Status {
	if isAdmin {
		return nil
	}
	return []models.Status{models.StatusApproved, models.StatusPending}
}

// Scope composes a visibility set into a query. The column is qualified by
// the caller so the fragment survives joins.
func Scope(column string, statuses []models.Status) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if statuses == nil {
			return db
		}
		return db.Where(column+" IN ?", statuses)
	}
}
