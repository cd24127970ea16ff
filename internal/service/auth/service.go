package auth

import (
	"context"
	"fmt"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/auth"
	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/jwt"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/password"
	"github.com/David-Smile/cloud-payroll-demo/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	hasher   *password.Hasher
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, hasher *password.Hasher, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		jwt:      jwtService,
	}
}

// claimsUserID extracts the authenticated subject id from the verified JWT
// in the request context.
func claimsUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        validator.NormalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
	}
	created, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(created.ID, created.Email, created.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Login implements auth.AuthService. Unknown email and wrong password
// collapse to the same invalid-credentials outcome.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, validator.NormalizeEmail(req.Email))
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(req.Password, userData.PasswordHash) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// Optional role assertion: reject when the caller claims a role other
	// than the one on record.
	if req.Role != "" && user.Role(req.Role) != userData.Role {
		return auth.TokenResponse{}, auth.ErrRoleMismatch
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// CurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) CurrentUser(ctx context.Context) (auth.UserResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return auth.UserResponse{}, err
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.ToUserResponse(userData), nil
}

// UpdateProfile implements auth.AuthService. The bearer token subject may
// change their own name and email; email keeps its uniqueness guarantee.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return auth.UserResponse{}, err
	}

	if req.Email != nil {
		normalized := validator.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}

	updated, err := a.userRepo.UpdateProfile(ctx, userID, user.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.ToUserResponse(updated), nil
}

// ChangePassword implements auth.AuthService. The current password is
// re-verified before the hash is replaced.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(req.CurrentPassword, userData.PasswordHash) {
		return auth.ErrInvalidCredentials
	}

	newHash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.userRepo.UpdatePassword(ctx, userID, newHash)
}
