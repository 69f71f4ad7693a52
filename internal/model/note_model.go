package model

type Note struct {
	Id                string `gorm:"type:uuid;primaryKey"`
	Title             string `gorm:"type:varchar(255)"`
	Content           string `gorm:"type:text"`
	Category          string `gorm:"type:varchar(128);not null;default:'General';index"`
	BackgroundColor   string `gorm:"type:varchar(16)"`
	UserId            string `gorm:"type:varchar(128);not null;index"`
	CreatedAt         int64  `gorm:"not null"`
	UpdatedAt         int64  `gorm:"not null"`
	LastSyncTimestamp int64  `gorm:"not null;default:0;index"`
	IsDeleted         bool   `gorm:"not null;default:false;index"`
}

func (Note) TableName() string {
	return "notes"
}
