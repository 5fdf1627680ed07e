package repository

import (
	"context"

	"estatesalehub/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetBySellerID(ctx context.Context, sellerID int) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
