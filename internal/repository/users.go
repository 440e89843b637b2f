package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gradgoals/gradgoals/internal/models"
)

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = timestamp(time.Now())
	_, err := r.exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID retrieves a user by ID
func (r *Repository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *Repository) findUser(ctx context.Context, column, value string) (*models.User, error) {
	user := &models.User{}
	err := r.queryRow(ctx, `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE `+column+` = ?`, value).
		Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
