package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/guard-reports-be/internal/models"
	"github.com/hongminglow/guard-reports-be/internal/storage"
)

const userColumns = `id, cedula, nombres, apellidos, telefono, correo, "contraseña", created_at`

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO usuarios (cedula, nombres, apellidos, telefono, correo, "contraseña")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := s.pool.QueryRow(ctx, query, user.Cedula, user.Nombres, user.Apellidos, user.Telefono, user.Correo, user.PasswordHash)
	return scanUser(row)
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, correo string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE correo = $1`, correo)
	return scanUser(row)
}

// UpdateUser rewrites a user row, keeping the stored hash when user.PasswordHash is empty.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	var (
		query string
		args  []any
	)
	if user.PasswordHash != "" {
		query = `UPDATE usuarios SET cedula = $1, nombres = $2, apellidos = $3, telefono = $4, correo = $5, "contraseña" = $6 WHERE id = $7`
		args = []any{user.Cedula, user.Nombres, user.Apellidos, user.Telefono, user.Correo, user.PasswordHash, user.ID}
	} else {
		query = `UPDATE usuarios SET cedula = $1, nombres = $2, apellidos = $3, telefono = $4, correo = $5 WHERE id = $6`
		args = []any{user.Cedula, user.Nombres, user.Apellidos, user.Telefono, user.Correo, user.ID}
	}
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteUser removes a user by id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Cedula, &user.Nombres, &user.Apellidos, &user.Telefono, &user.Correo, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}
