package specification

import "gorm.io/gorm"

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// TitleOrContentLike matches the keyword case-insensitively against title or
// content.
type TitleOrContentLike struct {
	Keyword string
}

func (s TitleOrContentLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Keyword + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
