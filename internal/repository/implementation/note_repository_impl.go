package implementation

import (
	"context"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
)

type NoteRepositoryImpl struct {
	remote contract.NoteStore
	local  contract.LocalNoteStore // nil means remote-only mode
	log    logger.ILogger
}

func NewNoteRepository(remote contract.NoteStore, local contract.LocalNoteStore, log logger.ILogger) contract.NoteRepository {
	return &NoteRepositoryImpl{
		remote: remote,
		local:  local,
		log:    log,
	}
}

func (r *NoteRepositoryImpl) reads() contract.NoteStore {
	if r.local != nil {
		return r.local
	}
	return r.remote
}

func (r *NoteRepositoryImpl) GetNotes(ctx context.Context, userID string) []*entity.Note {
	notes, err := r.reads().List(ctx, userID)
	if err != nil {
		r.log.Warn("NoteRepository", "note list degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Note{}
	}
	return notes
}

func (r *NoteRepositoryImpl) GetNotesByCategory(ctx context.Context, userID, category string) []*entity.Note {
	notes, err := r.reads().ListByCategory(ctx, userID, category)
	if err != nil {
		r.log.Warn("NoteRepository", "category list degraded to empty", map[string]interface{}{"user_id": userID, "category": category, "error": err.Error()})
		return []*entity.Note{}
	}
	return notes
}

func (r *NoteRepositoryImpl) SearchNotes(ctx context.Context, userID, keyword string) []*entity.Note {
	notes, err := r.reads().Search(ctx, userID, keyword)
	if err != nil {
		r.log.Warn("NoteRepository", "note search degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []*entity.Note{}
	}
	return notes
}

func (r *NoteRepositoryImpl) GetCategories(ctx context.Context, userID string) []string {
	categories, err := r.reads().Categories(ctx, userID)
	if err != nil {
		r.log.Warn("NoteRepository", "category query degraded to empty", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return []string{}
	}
	return categories
}

func (r *NoteRepositoryImpl) GetNoteByID(ctx context.Context, id string) (*entity.Note, error) {
	return r.reads().GetByID(ctx, id)
}

func (r *NoteRepositoryImpl) AddNote(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	note.Id = ""
	return r.save(ctx, note)
}

func (r *NoteRepositoryImpl) UpdateNote(ctx context.Context, note *entity.Note) error {
	_, err := r.save(ctx, note)
	return err
}

func (r *NoteRepositoryImpl) save(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	saved, err := r.remote.Save(ctx, note)
	if err != nil {
		return nil, err
	}
	if r.local != nil {
		if err := r.local.Upsert(ctx, saved); err != nil {
			r.log.Warn("NoteRepository", "local mirror write failed", map[string]interface{}{"id": saved.Id, "error": err.Error()})
		}
	}
	return saved, nil
}

func (r *NoteRepositoryImpl) DeleteNote(ctx context.Context, id string) error {
	if err := r.remote.Delete(ctx, id); err != nil {
		return err
	}
	if r.local != nil {
		if err := r.local.Delete(ctx, id); err != nil && err != contract.ErrNotFound {
			r.log.Warn("NoteRepository", "local delete failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
	}
	return nil
}

func (r *NoteRepositoryImpl) Sync(ctx context.Context, userID string, watermark int64) error {
	if r.local == nil {
		return nil
	}

	dirty, err := r.local.ListDirty(ctx, userID)
	if err != nil {
		return err
	}
	for _, note := range dirty {
		saved, err := r.remote.Save(ctx, note)
		if err != nil {
			return err
		}
		if err := r.local.Upsert(ctx, saved); err != nil {
			return err
		}
	}

	pulled, err := r.remote.ListUpdatedAfter(ctx, userID, watermark)
	if err != nil {
		return err
	}
	for _, note := range pulled {
		if err := r.local.Upsert(ctx, note); err != nil {
			return err
		}
	}

	r.log.Info("NoteRepository", "note sync pass finished", map[string]interface{}{
		"user_id": userID,
		"pushed":  len(dirty),
		"pulled":  len(pulled),
	})
	return nil
}
