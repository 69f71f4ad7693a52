// Package remote implements the store contracts against the cloud document
// database. Field names match the original mobile client's collections so
// both can share data.
//
// Failure policy: reads swallow transport errors and degrade to empty or nil
// results, logging the cause as a diagnostic side channel; writes surface
// errors to the caller. A network blip must never take a listing screen down.
package remote

import (
	"context"
	"errors"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionTodos = "todos"

type todoDocument struct {
	Id                string `bson:"_id"`
	Title             string `bson:"title"`
	Description       string `bson:"description"`
	IsCompleted       bool   `bson:"isCompleted"`
	StartAt           *int64 `bson:"startAt"`
	Deadline          *int64 `bson:"deadline"`
	UserId            string `bson:"userId"`
	CreatedAt         int64  `bson:"createdAt"`
	UpdatedAt         int64  `bson:"updatedAt"`
	LastSyncTimestamp int64  `bson:"lastSyncTimestamp"`
	IsDeleted         bool   `bson:"isDeleted"`
}

func (d *todoDocument) toEntity() *entity.Todo {
	return &entity.Todo{
		Id:                d.Id,
		Title:             d.Title,
		Description:       d.Description,
		IsCompleted:       d.IsCompleted,
		StartAt:           d.StartAt,
		Deadline:          d.Deadline,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

func todoToDocument(t *entity.Todo) *todoDocument {
	return &todoDocument{
		Id:                t.Id,
		Title:             t.Title,
		Description:       t.Description,
		IsCompleted:       t.IsCompleted,
		StartAt:           t.StartAt,
		Deadline:          t.Deadline,
		UserId:            t.UserId,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		LastSyncTimestamp: t.LastSyncTimestamp,
		IsDeleted:         t.IsDeleted,
	}
}

type TodoRemoteStore struct {
	coll *mongo.Collection
	log  logger.ILogger
}

func NewTodoRemoteStore(db *mongo.Database, log logger.ILogger) contract.TodoStore {
	return &TodoRemoteStore{
		coll: db.Collection(collectionTodos),
		log:  log,
	}
}

func (r *TodoRemoteStore) List(ctx context.Context, userID string) ([]*entity.Todo, error) {
	return r.find(ctx, bson.M{"userId": userID, "isDeleted": false})
}

func (r *TodoRemoteStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Todo, error) {
	// Deleted documents are included on purpose so deletions propagate.
	return r.find(ctx, bson.M{"userId": userID, "lastSyncTimestamp": bson.M{"$gt": watermark}})
}

func (r *TodoRemoteStore) find(ctx context.Context, filter bson.M) ([]*entity.Todo, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Warn("TodoRemoteStore", "todo query failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Todo{}, nil
	}
	var docs []*todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Warn("TodoRemoteStore", "todo cursor read failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Todo{}, nil
	}
	todos := make([]*entity.Todo, len(docs))
	for i, d := range docs {
		todos[i] = d.toEntity()
	}
	return todos, nil
}

func (r *TodoRemoteStore) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	var doc todoDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn("TodoRemoteStore", "todo lookup failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *TodoRemoteStore) Save(ctx context.Context, todo *entity.Todo) (*entity.Todo, error) {
	now := time.Now().UnixMilli()

	stamped := *todo
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}

	doc := todoToDocument(&stamped)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": stamped.Id}, doc, opts); err != nil {
		return nil, err
	}
	return &stamped, nil
}

func (r *TodoRemoteStore) Delete(ctx context.Context, id string) error {
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

func (r *TodoRemoteStore) UpdateCompletion(ctx context.Context, id string, isCompleted bool) error {
	now := time.Now().UnixMilli()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"isCompleted":       isCompleted,
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
