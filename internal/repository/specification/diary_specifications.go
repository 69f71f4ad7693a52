package specification

import "gorm.io/gorm"

// DateWithin selects diary entries whose normalized date falls inside the
// half-open window [start, end).
type DateWithin struct {
	Start int64
	End   int64
}

func (s DateWithin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ? AND date < ?", s.Start, s.End)
}
