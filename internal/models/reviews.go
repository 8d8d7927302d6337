package models

import (
	"time"
)

type Review struct {
	ReviewID    int64     `json:"ReviewId"`
	Body        string    `json:"Body"`
	Rating      int       `json:"Rating"`
	DateCreated time.Time `json:"DateCreated"`
	UserID      int64     `json:"UserId"`
}

// ReviewResponse is the review joined with its owner's public profile.
type ReviewResponse struct {
	ReviewID    int64     `json:"ReviewId"`
	Body        string    `json:"Body"`
	Rating      int       `json:"Rating"`
	DateCreated time.Time `json:"DateCreated"`
	UserID      int64     `json:"UserId"`
	Username    string    `json:"Username"`
}

func NewReviewResponse(review Review, user User) ReviewResponse {
	return ReviewResponse{
		ReviewID:    review.ReviewID,
		Body:        review.Body,
		Rating:      review.Rating,
		DateCreated: review.DateCreated,
		UserID:      user.UserID,
		Username:    user.Username,
	}
}
