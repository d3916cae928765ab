package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// CheckEmailAvailable fails with domain.ErrEmailTaken when a user already
// holds exactly this email. Lookups are case-sensitive.
func (s *UserService) CheckEmailAvailable(ctx context.Context, email string) error {
	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailTaken
	}
	return nil
}

// Register validates the request, checks email availability and stores the
// user. The returned name and email are the values as supplied.
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	if err := ValidateRegistration(input.Name, input.Email, input.Password, input.ConfirmPassword); err != nil {
		return domain.User{}, err
	}
	if err := s.CheckEmailAvailable(ctx, input.Email); err != nil {
		return domain.User{}, err
	}

	id, err := s.userRepository.Insert(
		ctx,
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		input.Password,
	)
	if err != nil {
		return domain.User{}, err
	}
	zap.L().Info("user registered", zap.Uint64("user_id", id))

	return domain.User{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	}, nil
}

var _ ports.UserService = (*UserService)(nil)
