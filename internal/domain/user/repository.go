package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// ProfileUpdate carries the mutable identity fields. Email collisions with
// another user surface as ErrUserEmailExists.
type ProfileUpdate struct {
	Name  *string
	Email *string
}
