package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const (
	insertUserQuery        = `INSERT INTO users (name, email, password) VALUES (?, ?, ?)`
	selectUserByEmailQuery = `SELECT id, name, email, password FROM users WHERE email = ?`
	existsUserByEmailQuery = `SELECT COUNT(*) FROM users WHERE email = ?`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       uint64 `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, name, email, password string) (uint64, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, name, email, password)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return uint64(id), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("select user by email: %w", err)
	}

	return domain.User{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Password: row.Password,
	}, true, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, existsUserByEmailQuery, email); err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}
