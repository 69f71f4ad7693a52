package entity

// Diary is a journal entry. Date is the entry's calendar day normalized to
// local midnight, distinct from CreatedAt. Mood is a free-text label from the
// vocabulary in internal/constant, used only for UI color mapping.
type Diary struct {
	Id                string
	Title             string
	Content           string
	Mood              string
	Date              int64
	UserId            string
	CreatedAt         int64
	UpdatedAt         int64
	LastSyncTimestamp int64
	IsDeleted         bool
}

func (d *Diary) Dirty() bool {
	return d.LastSyncTimestamp < d.UpdatedAt
}
