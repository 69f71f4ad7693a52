package constant

const (
	// DefaultNoteCategory is assigned when a note is created without one.
	DefaultNoteCategory = "General"

	// CategoryAll is the pseudo-category the listing endpoints accept to mean
	// "no category filter".
	CategoryAll = "all"
)

// Moods is the fixed vocabulary for diary entries. The value is stored as
// free text; the list only drives validation hints and color mapping.
var Moods = []string{
	"happy",
	"sad",
	"excited",
	"calm",
	"frustrated",
	"angry",
	"anxious",
	"neutral",
}

// Event types published on record mutations.
const (
	EventTodoCreated  = "TODO_CREATED"
	EventTodoUpdated  = "TODO_UPDATED"
	EventTodoDeleted  = "TODO_DELETED"
	EventNoteCreated  = "NOTE_CREATED"
	EventNoteUpdated  = "NOTE_UPDATED"
	EventNoteDeleted  = "NOTE_DELETED"
	EventDiaryCreated = "DIARY_CREATED"
	EventDiaryUpdated = "DIARY_UPDATED"
	EventDiaryDeleted = "DIARY_DELETED"
	EventSyncDone     = "SYNC_COMPLETED"
)
