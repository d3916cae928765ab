package memory

import (
	"context"
	"errors"
	"sync"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type UserRepository struct {
	mu      sync.RWMutex
	ids     sequence
	byEmail map[string]domain.User
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]domain.User)}
}

// ErrDuplicateEmail mirrors the unique constraint of the SQL schema.
var ErrDuplicateEmail = errors.New("memory: duplicate email")

func (r *UserRepository) Insert(_ context.Context, name, email, password string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return 0, ErrDuplicateEmail
	}
	id := r.ids.next()
	r.byEmail[email] = domain.User{ID: id, Name: name, Email: email, Password: password}
	return id, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	return user, ok, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}
