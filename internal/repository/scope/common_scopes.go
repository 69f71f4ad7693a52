package scope

import "gorm.io/gorm"

// ExcludeSoftDeleted hides soft-deleted records. The is_deleted flag is a
// plain column, sync queries read the rows it hides.
func ExcludeSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
