package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, name, email, password string) (uint64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	ResolvePrincipal(rawUserID string) (domain.Principal, error)
}
