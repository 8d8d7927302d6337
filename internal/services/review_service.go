package services

import (
	"context"

	"bankingBack/internal/models"
	"bankingBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo *repositories.ReviewRepository
}

func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.ReviewsRepo.GetAllReviews(ctx)
}

func (s *ReviewService) GetReviewsByUserID(ctx context.Context, userID int64) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByUserID(ctx, userID)
}

func (s *ReviewService) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	return s.ReviewsRepo.AddReview(ctx, review)
}
