package remote

import (
	"context"
	"errors"
	"strings"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionNotes = "notes"

type noteDocument struct {
	Id                string `bson:"_id"`
	Title             string `bson:"title"`
	Content           string `bson:"content"`
	Category          string `bson:"category"`
	BackgroundColor   string `bson:"backgroundColor"`
	UserId            string `bson:"userId"`
	CreatedAt         int64  `bson:"createdAt"`
	UpdatedAt         int64  `bson:"updatedAt"`
	LastSyncTimestamp int64  `bson:"lastSyncTimestamp"`
	IsDeleted         bool   `bson:"isDeleted"`
}

func (d *noteDocument) toEntity() *entity.Note {
	return &entity.Note{
		Id:                d.Id,
		Title:             d.Title,
		Content:           d.Content,
		Category:          d.Category,
		BackgroundColor:   d.BackgroundColor,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

func noteToDocument(n *entity.Note) *noteDocument {
	return &noteDocument{
		Id:                n.Id,
		Title:             n.Title,
		Content:           n.Content,
		Category:          n.Category,
		BackgroundColor:   n.BackgroundColor,
		UserId:            n.UserId,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
		LastSyncTimestamp: n.LastSyncTimestamp,
		IsDeleted:         n.IsDeleted,
	}
}

type NoteRemoteStore struct {
	coll *mongo.Collection
	log  logger.ILogger
}

func NewNoteRemoteStore(db *mongo.Database, log logger.ILogger) contract.NoteStore {
	return &NoteRemoteStore{
		coll: db.Collection(collectionNotes),
		log:  log,
	}
}

func (r *NoteRemoteStore) List(ctx context.Context, userID string) ([]*entity.Note, error) {
	return r.find(ctx, bson.M{"userId": userID, "isDeleted": false})
}

func (r *NoteRemoteStore) ListByCategory(ctx context.Context, userID, category string) ([]*entity.Note, error) {
	return r.find(ctx, bson.M{"userId": userID, "category": category, "isDeleted": false})
}

func (r *NoteRemoteStore) Search(ctx context.Context, userID, keyword string) ([]*entity.Note, error) {
	// The document store has no case-insensitive contains query, so this
	// fetches the user's notes and filters in memory, like the original.
	notes, err := r.List(ctx, userID)
	if err != nil {
		return []*entity.Note{}, nil
	}
	needle := strings.ToLower(strings.TrimSpace(keyword))
	matched := make([]*entity.Note, 0)
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

func (r *NoteRemoteStore) Categories(ctx context.Context, userID string) ([]string, error) {
	res := r.coll.Distinct(ctx, "category", bson.M{"userId": userID, "isDeleted": false})
	var categories []string
	if err := res.Decode(&categories); err != nil {
		r.log.Warn("NoteRemoteStore", "category query failed", map[string]interface{}{"error": err.Error()})
		return []string{}, nil
	}
	return categories, nil
}

func (r *NoteRemoteStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Note, error) {
	return r.find(ctx, bson.M{"userId": userID, "lastSyncTimestamp": bson.M{"$gt": watermark}})
}

func (r *NoteRemoteStore) find(ctx context.Context, filter bson.M) ([]*entity.Note, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Warn("NoteRemoteStore", "note query failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Note{}, nil
	}
	var docs []*noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Warn("NoteRemoteStore", "note cursor read failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Note{}, nil
	}
	notes := make([]*entity.Note, len(docs))
	for i, d := range docs {
		notes[i] = d.toEntity()
	}
	return notes, nil
}

func (r *NoteRemoteStore) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	var doc noteDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn("NoteRemoteStore", "note lookup failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *NoteRemoteStore) Save(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	now := time.Now().UnixMilli()

	stamped := *note
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": stamped.Id}, noteToDocument(&stamped), opts); err != nil {
		return nil, err
	}
	return &stamped, nil
}

func (r *NoteRemoteStore) Delete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"isDeleted":         true,
		"updatedAt":         now,
		"lastSyncTimestamp": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}
