package contract

import (
	"context"

	"todonotediary-be/internal/entity"
)

// UserStore persists user profiles in the users collection. Only the auth
// boundary touches it; the rest of the core consumes the user id string.
type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id, avatarName string) error
}
