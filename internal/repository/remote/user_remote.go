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
)

const collectionUsers = "users"

type userDocument struct {
	Id           string `bson:"_id"`
	Email        string `bson:"email"`
	DisplayName  string `bson:"displayName"`
	AvatarName   string `bson:"avatarName"`
	PasswordHash string `bson:"passwordHash"`
	CreatedAt    int64  `bson:"createdAt"`
	UpdatedAt    int64  `bson:"updatedAt"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		Id:           d.Id,
		Email:        d.Email,
		DisplayName:  d.DisplayName,
		AvatarName:   d.AvatarName,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type UserRemoteStore struct {
	coll *mongo.Collection
	log  logger.ILogger
}

func NewUserRemoteStore(db *mongo.Database, log logger.ILogger) contract.UserStore {
	return &UserRemoteStore{
		coll: db.Collection(collectionUsers),
		log:  log,
	}
}

// Create inserts a new user. Email uniqueness is enforced here with a lookup
// rather than a unique index so the error is stable regardless of how the
// collection was provisioned.
func (r *UserRemoteStore) Create(ctx context.Context, user *entity.User) error {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return contract.ErrEmailTaken
	}

	now := time.Now().UnixMilli()
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := userDocument{
		Id:           user.Id,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		AvatarName:   user.AvatarName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, &doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRemoteStore) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRemoteStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRemoteStore) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.Warn("UserRemoteStore", "user lookup failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *UserRemoteStore) UpdateAvatar(ctx context.Context, id, avatarName string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"avatarName": avatarName,
		"updatedAt":  time.Now().UnixMilli(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}
