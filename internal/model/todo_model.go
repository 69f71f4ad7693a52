package model

// Todo is the local-store row backing entity.Todo. Soft deletion is the
// domain-level IsDeleted flag, not gorm's DeletedAt: deleted rows must stay
// readable so the sync algorithm can push and pull them.
type Todo struct {
	Id                string `gorm:"type:uuid;primaryKey"`
	Title             string `gorm:"type:varchar(255);not null"`
	Description       string `gorm:"type:text"`
	IsCompleted       bool   `gorm:"not null;default:false"`
	StartAt           *int64
	Deadline          *int64
	UserId            string `gorm:"type:varchar(128);not null;index"`
	CreatedAt         int64  `gorm:"not null"`
	UpdatedAt         int64  `gorm:"not null"`
	LastSyncTimestamp int64  `gorm:"not null;default:0;index"`
	IsDeleted         bool   `gorm:"not null;default:false;index"`
}

func (Todo) TableName() string {
	return "todos"
}
