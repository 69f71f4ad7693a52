package model

type Diary struct {
	Id                string `gorm:"type:uuid;primaryKey"`
	Title             string `gorm:"type:varchar(255)"`
	Content           string `gorm:"type:text"`
	Mood              string `gorm:"type:varchar(32)"`
	Date              int64  `gorm:"not null;index"`
	UserId            string `gorm:"type:varchar(128);not null;index"`
	CreatedAt         int64  `gorm:"not null"`
	UpdatedAt         int64  `gorm:"not null"`
	LastSyncTimestamp int64  `gorm:"not null;default:0;index"`
	IsDeleted         bool   `gorm:"not null;default:false;index"`
}

func (Diary) TableName() string {
	return "diaries"
}
