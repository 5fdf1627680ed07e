package usecase

import (
	"context"
	"strings"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/internal/domain/repository"
	"estatesalehub/pkg/errors"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// GetOrCreateUser resolves a Firebase uid to a local user, creating the
// record with a fresh seller id on first sign-in.
func (uc *UserUseCase) GetOrCreateUser(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	email, err := uc.authClient.GetUserEmail(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to look up Firebase user", err)
	}

	user = &entity.User{
		ID:       uid,
		Email:    email,
		Username: usernameFromEmail(email),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateProfileInput struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
