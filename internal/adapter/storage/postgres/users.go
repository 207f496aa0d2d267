package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FSDTeam-SAA/loadboard/internal/core/domain"
)

const userColumns = `id, name, email, phone, role, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createUser = `
INSERT INTO users (id, name, email, phone, role, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Role         domain.Role
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (domain.User, error) {
	return scanUser(q.db.QueryRow(ctx, createUser,
		arg.ID, arg.Name, arg.Email, arg.Phone, arg.Role, arg.PasswordHash))
}

const getUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := scanUser(q.db.QueryRow(ctx, getUser, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(q.db.QueryRow(ctx, getUserByEmail, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, err
}
