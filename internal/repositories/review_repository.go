package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bankingBack/internal/models"
)

type ReviewRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

const selectReviews = `
SELECT review_id, body, rating, date_created, user_id
FROM reviews
`

func (r *ReviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	query := selectReviews + `ORDER BY date_created DESC, review_id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepository) GetReviewsByUserID(ctx context.Context, userID int64) ([]models.Review, error) {
	query := selectReviews + `WHERE user_id = ?
ORDER BY date_created DESC, review_id DESC`
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

func (r *ReviewRepository) AddReview(ctx context.Context, rev models.Review) (models.Review, error) {
	rev.DateCreated = time.Now().UTC().Truncate(time.Microsecond)

	query := `
INSERT INTO reviews (body, rating, date_created, user_id)
VALUES (?, ?, ?, ?)
	`
	args := []interface{}{rev.Body, rev.Rating, rev.DateCreated, rev.UserID}

	if r.Dialect == DialectPostgres {
		err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query)+` RETURNING review_id`, args...).Scan(&rev.ReviewID)
		if err != nil {
			return models.Review{}, wrapInsertError(err)
		}
		return rev, nil
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Review{}, wrapInsertError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	rev.ReviewID = id
	return rev, nil
}

func wrapInsertError(err error) error {
	if isForeignKeyConstraintError(err) {
		return fmt.Errorf("insert review: %w", models.ErrUserNotFound)
	}
	return err
}

func scanReviews(rows *sql.Rows) ([]models.Review, error) {
	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ReviewID, &rev.Body, &rev.Rating, &rev.DateCreated, &rev.UserID); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
