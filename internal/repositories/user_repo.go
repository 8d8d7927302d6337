package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bankingBack/internal/models"
)

type UserRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	query := `
        SELECT user_id, username
        FROM users
        WHERE user_id = ?
    `
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id).Scan(&user.UserID, &user.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
