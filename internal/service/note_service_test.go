package service

import (
	"context"
	"testing"

	"todonotediary-be/internal/constant"
	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/pkg/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNoteRepo struct {
	mockNoteRepo
	added          *entity.Note
	notes          []*entity.Note
	categoryCalls  int
	categoriesList []string
}

func (m *stubNoteRepo) AddNote(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	note.Id = "n1"
	m.added = note
	return note, nil
}

func (m *stubNoteRepo) GetNotes(ctx context.Context, userID string) []*entity.Note {
	return m.notes
}

func (m *stubNoteRepo) GetCategories(ctx context.Context, userID string) []string {
	m.categoryCalls++
	return m.categoriesList
}

func TestCreateNoteDefaultsCategory(t *testing.T) {
	repo := &stubNoteRepo{}
	svc := NewNoteService(repo, nil, newNopLogger())

	_, err := svc.Create(context.Background(), "u1", &dto.CreateNoteRequest{Title: "shopping"})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultNoteCategory, repo.added.Category)
}

func TestCreateNoteKeepsExplicitCategory(t *testing.T) {
	repo := &stubNoteRepo{}
	svc := NewNoteService(repo, nil, newNopLogger())

	_, err := svc.Create(context.Background(), "u1", &dto.CreateNoteRequest{Title: "shopping", Category: "Work"})
	require.NoError(t, err)
	assert.Equal(t, "Work", repo.added.Category)
}

func TestListBackfillsMissingBackgroundColor(t *testing.T) {
	repo := &stubNoteRepo{notes: []*entity.Note{
		{Id: "n1", Title: "no color", UserId: "u1"},
		{Id: "n2", Title: "has color", UserId: "u1", BackgroundColor: "#123456"},
	}}
	svc := NewNoteService(repo, nil, newNopLogger())

	res := svc.List(context.Background(), "u1", constant.CategoryAll)
	require.Len(t, res, 2)
	assert.Equal(t, palette.DefaultNoteColor("n1"), res[0].BackgroundColor)
	assert.Equal(t, "#123456", res[1].BackgroundColor)
}

func TestCategoriesAreCachedPerUser(t *testing.T) {
	repo := &stubNoteRepo{categoriesList: []string{"Work", "General"}}
	svc := NewNoteService(repo, nil, newNopLogger())
	ctx := context.Background()

	first := svc.Categories(ctx, "u1")
	second := svc.Categories(ctx, "u1")

	assert.Equal(t, 1, repo.categoryCalls)
	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, []string{"General", "Work"}, first.Categories, "categories are sorted")
}

func TestMutationInvalidatesCategoryCache(t *testing.T) {
	repo := &stubNoteRepo{categoriesList: []string{"General"}}
	svc := NewNoteService(repo, nil, newNopLogger())
	ctx := context.Background()

	svc.Categories(ctx, "u1")
	_, err := svc.Create(ctx, "u1", &dto.CreateNoteRequest{Title: "x", Category: "Work"})
	require.NoError(t, err)

	repo.categoriesList = []string{"General", "Work"}
	res := svc.Categories(ctx, "u1")
	assert.Equal(t, 2, repo.categoryCalls, "cache was invalidated by the write")
	assert.Contains(t, res.Categories, "Work")
}
