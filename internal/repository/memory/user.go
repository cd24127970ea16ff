// Package memory provides in-memory repository implementations that honor
// the same contracts as the postgresql package, including uniqueness
// violations under concurrent callers. Used in tests and local development.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = validator.NormalizeEmail(email)
	for _, u := range r.users {
		if validator.NormalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) Create(_ context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := validator.NormalizeEmail(newUser.Email)
	for _, u := range r.users {
		if validator.NormalizeEmail(u.Email) == email {
			return user.User{}, user.ErrUserEmailExists
		}
	}

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}
	now := time.Now()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.users[newUser.ID] = newUser

	return newUser, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, userID string, upd user.ProfileUpdate) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	if upd.Email != nil {
		email := validator.NormalizeEmail(*upd.Email)
		for otherID, other := range r.users {
			if otherID != userID && validator.NormalizeEmail(other.Email) == email {
				return user.User{}, user.ErrUserEmailExists
			}
		}
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	u.UpdatedAt = time.Now()
	r.users[userID] = u

	return u, nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	r.users[userID] = u

	return nil
}
