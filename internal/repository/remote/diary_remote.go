package remote

import (
	"context"
	"errors"
	"strings"
	"time"

	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/repository/contract"
	"todonotediary-be/pkg/datewindow"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionDiaries = "diaries"

type diaryDocument struct {
	Id                string `bson:"_id"`
	Title             string `bson:"title"`
	Content           string `bson:"content"`
	Mood              string `bson:"mood"`
	Date              int64  `bson:"date"`
	UserId            string `bson:"userId"`
	CreatedAt         int64  `bson:"createdAt"`
	UpdatedAt         int64  `bson:"updatedAt"`
	LastSyncTimestamp int64  `bson:"lastSyncTimestamp"`
	IsDeleted         bool   `bson:"isDeleted"`
}

func (d *diaryDocument) toEntity() *entity.Diary {
	return &entity.Diary{
		Id:                d.Id,
		Title:             d.Title,
		Content:           d.Content,
		Mood:              d.Mood,
		Date:              d.Date,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

func diaryToDocument(d *entity.Diary) *diaryDocument {
	return &diaryDocument{
		Id:                d.Id,
		Title:             d.Title,
		Content:           d.Content,
		Mood:              d.Mood,
		Date:              d.Date,
		UserId:            d.UserId,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastSyncTimestamp: d.LastSyncTimestamp,
		IsDeleted:         d.IsDeleted,
	}
}

type DiaryRemoteStore struct {
	coll *mongo.Collection
	log  logger.ILogger
	loc  *time.Location
}

func NewDiaryRemoteStore(db *mongo.Database, log logger.ILogger) contract.DiaryStore {
	return &DiaryRemoteStore{
		coll: db.Collection(collectionDiaries),
		log:  log,
		loc:  time.Local,
	}
}

func (r *DiaryRemoteStore) List(ctx context.Context, userID string) ([]*entity.Diary, error) {
	return r.find(ctx, bson.M{"userId": userID, "isDeleted": false})
}

// ListByDate matches on the exact normalized midnight first, then falls back
// to a calendar-day comparison for entries written before dates were
// normalized on save.
func (r *DiaryRemoteStore) ListByDate(ctx context.Context, userID string, date int64) ([]*entity.Diary, error) {
	all, err := r.List(ctx, userID)
	if err != nil {
		return []*entity.Diary{}, nil
	}
	midnight := datewindow.NormalizeToMidnight(date, r.loc)
	matched := make([]*entity.Diary, 0)
	for _, d := range all {
		if d.Date == midnight || datewindow.SameCalendarDay(d.Date, date, r.loc) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *DiaryRemoteStore) Search(ctx context.Context, userID, keyword string) ([]*entity.Diary, error) {
	all, err := r.List(ctx, userID)
	if err != nil {
		return []*entity.Diary{}, nil
	}
	needle := strings.ToLower(strings.TrimSpace(keyword))
	matched := make([]*entity.Diary, 0)
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Title), needle) ||
			strings.Contains(strings.ToLower(d.Content), needle) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *DiaryRemoteStore) ListUpdatedAfter(ctx context.Context, userID string, watermark int64) ([]*entity.Diary, error) {
	return r.find(ctx, bson.M{"userId": userID, "lastSyncTimestamp": bson.M{"$gt": watermark}})
}

func (r *DiaryRemoteStore) find(ctx context.Context, filter bson.M) ([]*entity.Diary, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		r.log.Warn("DiaryRemoteStore", "diary query failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Diary{}, nil
	}
	var docs []*diaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Warn("DiaryRemoteStore", "diary cursor read failed", map[string]interface{}{"error": err.Error()})
		return []*entity.Diary{}, nil
	}
	diaries := make([]*entity.Diary, len(docs))
	for i, d := range docs {
		diaries[i] = d.toEntity()
	}
	return diaries, nil
}

func (r *DiaryRemoteStore) GetByID(ctx context.Context, id string) (*entity.Diary, error) {
	var doc diaryDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warn("DiaryRemoteStore", "diary lookup failed", map[string]interface{}{"id": id, "error": err.Error()})
		}
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *DiaryRemoteStore) Save(ctx context.Context, diary *entity.Diary) (*entity.Diary, error) {
	now := time.Now().UnixMilli()

	stamped := *diary
	stamped.LastSyncTimestamp = now
	stamped.UpdatedAt = now
	if stamped.Date != 0 {
		stamped.Date = datewindow.NormalizeToMidnight(stamped.Date, r.loc)
	}
	if stamped.Id == "" {
		stamped.Id = uuid.NewString()
		stamped.CreatedAt = now
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": stamped.Id}, diaryToDocument(&stamped), opts); err != nil {
		return nil, err
	}
	return &stamped, nil
}

func (r *DiaryRemoteStore) Delete(ctx context.Context, id string) error {
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
