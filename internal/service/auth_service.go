package service

import (
	"context"
	"time"

	"todonotediary-be/internal/dto"
	"todonotediary-be/internal/entity"
	"todonotediary-be/internal/pkg/serverutils"
	"todonotediary-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetUserData(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateAvatar(ctx context.Context, userID string, req *dto.UpdateAvatarRequest) (*dto.UserResponse, error)
}

type authService struct {
	userStore contract.UserStore
}

func NewAuthService(userStore contract.UserStore) IAuthService {
	return &authService{userStore: userStore}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.respondWithToken(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.ErrUnauthorized
	}

	return s.respondWithToken(user)
}

func (s *authService) GetUserData(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, contract.ErrNotFound
	}
	return userToResponse(user), nil
}

func (s *authService) UpdateAvatar(ctx context.Context, userID string, req *dto.UpdateAvatarRequest) (*dto.UserResponse, error) {
	if err := s.userStore.UpdateAvatar(ctx, userID, req.AvatarName); err != nil {
		return nil, err
	}
	return s.GetUserData(ctx, userID)
}

func (s *authService) respondWithToken(user *entity.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(serverutils.JWTSecret())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  *userToResponse(user),
	}, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:          u.Id,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarName:  u.AvatarName,
	}
}
