package postgresql_test

import (
	"context"
	"testing"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	truncateAll(t, db)

	repo := postgresql.NewUserRepository(db)

	created, err := repo.Create(context.Background(), user.User{
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         user.RoleHR,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, user.RoleHR, byEmail.Role)

	byID, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", byID.Name)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	truncateAll(t, db)

	repo := postgresql.NewUserRepository(db)

	u := user.User{
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		Role:         user.RoleEmployee,
	}
	_, err := repo.Create(context.Background(), u)
	require.NoError(t, err)

	u.ID = ""
	_, err = repo.Create(context.Background(), u)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	truncateAll(t, db)

	repo := postgresql.NewUserRepository(db)

	first, err := repo.Create(context.Background(), user.User{
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: "hash-a",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	second, err := repo.Create(context.Background(), user.User{
		Name:         "Bob Jones",
		Email:        "bob@example.com",
		PasswordHash: "hash-b",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	name := "Alice Cooper"
	email := "alice.cooper@example.com"
	updated, err := repo.UpdateProfile(context.Background(), first.ID, user.ProfileUpdate{
		Name:  &name,
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "alice.cooper@example.com", updated.Email)
	assert.Equal(t, "hash-a", updated.PasswordHash)

	// Another user's address trips the unique constraint.
	taken := second.Email
	_, err = repo.UpdateProfile(context.Background(), first.ID, user.ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = repo.UpdateProfile(context.Background(), "00000000-0000-0000-0000-000000000000", user.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	db := setupTestDB(t)
	truncateAll(t, db)

	repo := postgresql.NewUserRepository(db)

	created, err := repo.Create(context.Background(), user.User{
		Name:         "Bob Jones",
		Email:        "bob@example.com",
		PasswordHash: "old-hash",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePassword(context.Background(), created.ID, "new-hash"))

	updated, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)

	err = repo.UpdatePassword(context.Background(), "00000000-0000-0000-0000-000000000000", "new-hash")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
