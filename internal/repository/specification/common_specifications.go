package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by record id
type ByID struct {
	ID string
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OwnedByUser scopes every query to a single owner
type OwnedByUser struct {
	UserID string
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// NotDeleted filters out soft-deleted records. Soft deletion here is the
// domain is_deleted flag, so listing queries must apply it explicitly.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// UpdatedAfter selects records pushed to the remote store after the
// watermark (strictly greater).
type UpdatedAfter struct {
	Watermark int64
}

func (s UpdatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_sync_timestamp > ?", s.Watermark)
}

// Dirty selects records with unpushed local changes.
type Dirty struct{}

func (s Dirty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_sync_timestamp < updated_at")
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}
