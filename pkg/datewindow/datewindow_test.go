package datewindow

import (
	"testing"
	"time"

	"todonotediary-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

var loc = time.UTC

func ms(t time.Time) int64 { return t.UnixMilli() }

func ptr(v int64) *int64 { return &v }

func day(dayOffset, hour int) int64 {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	return ms(base.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(day(0, 15), loc)
	assert.Equal(t, day(0, 0), start)
	assert.Equal(t, day(1, 0), end)

	// midnight itself belongs to the day, the following midnight does not
	assert.Equal(t, start, NormalizeToMidnight(start, loc))
	assert.NotEqual(t, start, NormalizeToMidnight(end, loc))
}

func TestBelongsToDay(t *testing.T) {
	start, end := DayBounds(day(0, 12), loc)

	t.Run("start endpoint inside window", func(t *testing.T) {
		todo := &entity.Todo{StartAt: ptr(day(0, 9)), Deadline: ptr(day(3, 17))}
		assert.True(t, BelongsToDay(todo, start, end))
	})

	t.Run("deadline endpoint inside window", func(t *testing.T) {
		todo := &entity.Todo{StartAt: ptr(day(-2, 9)), Deadline: ptr(day(0, 17))}
		assert.True(t, BelongsToDay(todo, start, end))
	})

	t.Run("span covers the day but neither endpoint lands on it", func(t *testing.T) {
		// A todo spanning day -2 to day +2 is not attributed to day 0.
		todo := &entity.Todo{StartAt: ptr(day(-2, 9)), Deadline: ptr(day(2, 17))}
		assert.False(t, BelongsToDay(todo, start, end))
	})

	t.Run("end of day is exclusive", func(t *testing.T) {
		todo := &entity.Todo{StartAt: ptr(end)}
		assert.False(t, BelongsToDay(todo, start, end))
	})

	t.Run("missing both endpoints", func(t *testing.T) {
		todo := &entity.Todo{}
		assert.False(t, BelongsToDay(todo, start, end))
	})
}

func TestUpcomingPastPredicates(t *testing.T) {
	now := day(0, 12)

	t.Run("completed todo is past even with future deadline", func(t *testing.T) {
		todo := &entity.Todo{IsCompleted: true, Deadline: ptr(day(5, 0))}
		assert.True(t, IsPast(todo, now))
		assert.False(t, IsUpcoming(todo, now))
	})

	t.Run("missing deadline never excludes from upcoming", func(t *testing.T) {
		todo := &entity.Todo{}
		assert.True(t, IsUpcoming(todo, now))
		assert.False(t, IsPast(todo, now))
	})

	t.Run("expired deadline moves to past", func(t *testing.T) {
		todo := &entity.Todo{Deadline: ptr(day(0, 11))}
		assert.False(t, IsUpcoming(todo, now))
		assert.True(t, IsPast(todo, now))
	})

	t.Run("deadline exactly now counts as upcoming", func(t *testing.T) {
		todo := &entity.Todo{Deadline: ptr(now)}
		assert.True(t, IsUpcoming(todo, now))
		assert.False(t, IsPast(todo, now))
	})
}

func TestTodoMovesFromUpcomingToPastAcrossTheDay(t *testing.T) {
	// startAt D 09:00, deadline D 17:00
	todo := &entity.Todo{Id: "t1", StartAt: ptr(day(0, 9)), Deadline: ptr(day(0, 17))}
	todos := []*entity.Todo{todo}
	selected := day(0, 0)

	atMorning := FilterUpcoming(todos, selected, day(0, 8), loc)
	assert.Len(t, atMorning, 1)
	assert.Empty(t, FilterPast(todos, selected, day(0, 8), loc))

	atEvening := FilterPast(todos, selected, day(0, 18), loc)
	assert.Len(t, atEvening, 1)
	assert.Empty(t, FilterUpcoming(todos, selected, day(0, 18), loc))
}

func TestFilterUpcomingOrdering(t *testing.T) {
	a := &entity.Todo{Id: "a", StartAt: ptr(day(0, 10)), Deadline: ptr(day(0, 20))}
	b := &entity.Todo{Id: "b", StartAt: ptr(day(0, 8)), Deadline: ptr(day(0, 20))}
	c := &entity.Todo{Id: "c", StartAt: nil, Deadline: ptr(day(0, 15))}
	d := &entity.Todo{Id: "d", StartAt: ptr(day(0, 8)), Deadline: ptr(day(0, 18))}

	got := FilterUpcoming([]*entity.Todo{a, b, c, d}, day(0, 0), day(0, 0), loc)

	ids := make([]string, 0, len(got))
	for _, todo := range got {
		ids = append(ids, todo.Id)
	}
	// StartAt ascending with nil last, ties broken by Deadline ascending.
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
}

func TestFilterPastOrdering(t *testing.T) {
	now := day(1, 0)
	done := &entity.Todo{Id: "done", IsCompleted: true, Deadline: ptr(day(0, 20))}
	early := &entity.Todo{Id: "early", Deadline: ptr(day(0, 9))}
	late := &entity.Todo{Id: "late", Deadline: ptr(day(0, 15))}

	got := FilterPast([]*entity.Todo{late, early, done}, day(0, 0), now, loc)

	ids := make([]string, 0, len(got))
	for _, todo := range got {
		ids = append(ids, todo.Id)
	}
	// Completed first, then deadline ascending.
	assert.Equal(t, []string{"done", "early", "late"}, ids)
}

func TestSameCalendarDay(t *testing.T) {
	assert.True(t, SameCalendarDay(day(0, 1), day(0, 23), loc))
	assert.False(t, SameCalendarDay(day(0, 23), day(1, 0), loc))
}
