package entity

// Todo is a user task. Timestamps are epoch milliseconds; StartAt and
// Deadline are optional. An empty Id means the record has not been persisted
// to the remote store yet and a document id must be assigned on save.
type Todo struct {
	Id                string
	Title             string
	Description       string
	IsCompleted       bool
	StartAt           *int64
	Deadline          *int64
	UserId            string
	CreatedAt         int64
	UpdatedAt         int64
	LastSyncTimestamp int64
	IsDeleted         bool
}

// Dirty reports whether the record carries local changes that have not been
// pushed to the remote store.
func (t *Todo) Dirty() bool {
	return t.LastSyncTimestamp < t.UpdatedAt
}
