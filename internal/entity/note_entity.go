package entity

// Note is a free-form user note. BackgroundColor is a hex string; when empty
// the UI-facing layers derive a stable default from the note id, it is never
// written back as a chosen color.
type Note struct {
	Id                string
	Title             string
	Content           string
	Category          string
	BackgroundColor   string
	UserId            string
	CreatedAt         int64
	UpdatedAt         int64
	LastSyncTimestamp int64
	IsDeleted         bool
}

func (n *Note) Dirty() bool {
	return n.LastSyncTimestamp < n.UpdatedAt
}
