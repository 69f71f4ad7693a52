// Package datewindow holds the pure calendar-day filtering rules for todos
// and diaries. All timestamps are epoch milliseconds; day boundaries are
// computed in the supplied location so a record lands on the day the user
// actually saw when creating it.
package datewindow

import (
	"sort"
	"time"

	"todonotediary-be/internal/entity"
)

// DayBounds returns midnight of the calendar day containing ts (inclusive)
// and midnight of the following day (exclusive), in loc.
func DayBounds(ts int64, loc *time.Location) (startOfDay, endOfDay int64) {
	t := time.UnixMilli(ts).In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli()
}

// NormalizeToMidnight truncates ts to midnight of its calendar day in loc.
// Diary dates are stored normalized this way.
func NormalizeToMidnight(ts int64, loc *time.Location) int64 {
	start, _ := DayBounds(ts, loc)
	return start
}

// SameCalendarDay reports whether a and b fall on the same calendar day in loc.
func SameCalendarDay(a, b int64, loc *time.Location) bool {
	ta, tb := time.UnixMilli(a).In(loc), time.UnixMilli(b).In(loc)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month() && ta.Day() == tb.Day()
}

// BelongsToDay reports whether the todo is attributed to the selected day:
// either its start or its deadline falls inside [startOfDay, endOfDay).
// A todo spanning several days is attributed only to the days its two
// endpoints land on, not the days in between.
func BelongsToDay(todo *entity.Todo, startOfDay, endOfDay int64) bool {
	var startAt int64
	if todo.StartAt != nil {
		startAt = *todo.StartAt
	}
	if startAt >= startOfDay && startAt < endOfDay {
		return true
	}
	if todo.Deadline != nil && *todo.Deadline >= startOfDay && *todo.Deadline < endOfDay {
		return true
	}
	return false
}

// IsUpcoming reports whether the todo counts as upcoming relative to now:
// not completed and its deadline has not passed. A missing deadline never
// excludes a todo.
func IsUpcoming(todo *entity.Todo, now int64) bool {
	if todo.IsCompleted {
		return false
	}
	return todo.Deadline == nil || *todo.Deadline >= now
}

// IsPast reports whether the todo counts as past relative to now: its
// deadline has passed, or it is completed. A completed todo is past even
// when its deadline is still in the future.
func IsPast(todo *entity.Todo, now int64) bool {
	if todo.IsCompleted {
		return true
	}
	return todo.Deadline != nil && *todo.Deadline < now
}

// FilterUpcoming returns the todos attributed to the day containing
// selectedDate that are still upcoming at now, ordered by StartAt ascending
// (missing last) then Deadline ascending (missing last).
func FilterUpcoming(todos []*entity.Todo, selectedDate, now int64, loc *time.Location) []*entity.Todo {
	startOfDay, endOfDay := DayBounds(selectedDate, loc)
	out := make([]*entity.Todo, 0)
	for _, t := range todos {
		if BelongsToDay(t, startOfDay, endOfDay) && IsUpcoming(t, now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := compareOptional(out[i].StartAt, out[j].StartAt); c != 0 {
			return c < 0
		}
		return compareOptional(out[i].Deadline, out[j].Deadline) < 0
	})
	return out
}

// FilterPast returns the todos attributed to the day containing selectedDate
// that are past at now, with completed items first, then by Deadline
// ascending (missing last).
func FilterPast(todos []*entity.Todo, selectedDate, now int64, loc *time.Location) []*entity.Todo {
	startOfDay, endOfDay := DayBounds(selectedDate, loc)
	out := make([]*entity.Todo, 0)
	for _, t := range todos {
		if BelongsToDay(t, startOfDay, endOfDay) && IsPast(t, now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCompleted != out[j].IsCompleted {
			return out[i].IsCompleted
		}
		return compareOptional(out[i].Deadline, out[j].Deadline) < 0
	})
	return out
}

// compareOptional orders present values ascending and sorts nil after any
// present value.
func compareOptional(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
