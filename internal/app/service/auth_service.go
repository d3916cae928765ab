package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// AuthService turns credentials or a raw user identifier into a principal.
// Neither path involves real session security.
type AuthService struct {
	userRepository ports.UserRepository
}

func NewAuthService(userRepository ports.UserRepository) *AuthService {
	return &AuthService{userRepository: userRepository}
}

// Login walks credentials check, user lookup and password comparison in
// that order. An unknown email reports domain.ErrInvalidCredentials; a
// known email with the wrong password reports domain.ErrWrongPassword.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	if err := ValidateLoginCredentials(email, password); err != nil {
		return domain.AuthResult{}, err
	}

	user, found, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if !found {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	if user.Password != password {
		return domain.AuthResult{}, domain.ErrWrongPassword
	}
	zap.L().Info("user logged in", zap.Uint64("user_id", user.ID))

	return domain.AuthResult{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: domain.FakeToken(user.ID),
	}, nil
}

// ResolvePrincipal trusts the caller-supplied identifier as-is. Anything
// that is not a positive integer fitting a signed 64-bit column is rejected.
func (s *AuthService) ResolvePrincipal(rawUserID string) (domain.Principal, error) {
	userID, err := strconv.ParseUint(strings.TrimSpace(rawUserID), 10, 64)
	if err != nil || userID == 0 || userID > math.MaxInt64 {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return domain.Principal{UserID: userID}, nil
}

var _ ports.AuthService = (*AuthService)(nil)
