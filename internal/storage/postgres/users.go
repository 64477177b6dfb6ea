package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/servicebooking/internal/domain/errors"
	"github.com/polkiloo/servicebooking/internal/domain/model"
)

const userColumns = `id, name, email, password_hash, is_admin, created_at`

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, name, email, password_hash, is_admin) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	err := r.storage.pool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.IsAdmin).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) (*model.User, error) {
	const query = `UPDATE users SET name=$2, email=$3, password_hash=$4 WHERE id=$1 RETURNING is_admin, created_at`
	err := r.storage.pool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash).Scan(&user.IsAdmin, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
			return nil, domainErrors.ErrAlreadyExists
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
