// Package memory implements the storage ports in process memory. It backs
// DB_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	tasks *TaskRepository
	users *UserRepository
}

func NewStore() *Store {
	return &Store{
		tasks: NewTaskRepository(),
		users: NewUserRepository(),
	}
}

func (s *Store) Tasks() *TaskRepository { return s.tasks }

func (s *Store) Users() *UserRepository { return s.users }

// PingContext always succeeds; it lets the health handler treat the store
// like a database connection.
func (s *Store) PingContext(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

type sequence struct {
	mu   sync.Mutex
	last uint64
}

func (s *sequence) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}
