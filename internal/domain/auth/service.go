package auth

import (
	"context"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	CurrentUser(ctx context.Context) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
