package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JC-Quero/gym-tracker/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (username, role, hashed_password) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Role, user.HashedPassword)
	if err != nil {
		return nil, translateDBError(err, "user", "username")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, username, role, hashed_password FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		user := entity.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.HashedPassword); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, username, role, hashed_password FROM users WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Role, &user.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, username, role, hashed_password FROM users WHERE username = ?`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Role, &user.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &entity.NotFoundError{Entity: "user"}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
