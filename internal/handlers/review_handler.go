package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"bankingBack/internal/auth"
	"bankingBack/internal/models"
)

type ReviewService interface {
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByUserID(ctx context.Context, userID int64) ([]models.Review, error)
	AddReview(ctx context.Context, review models.Review) (models.Review, error)
}

// UserLookup returns nil, nil when the user does not exist.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type ReviewHandler struct {
	Service      ReviewService
	Users        UserLookup
	ErrorLog     *log.Logger
	ExposeErrors bool
}

func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetAllReviews(r.Context())
	if err != nil {
		h.serverError(w, "An error occurred while retrieving reviews", err)
		return
	}
	h.writeJSON(w, reviews)
}

func (h *ReviewHandler) GetReviewsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(getParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.GetReviewsByUserID(r.Context(), userID)
	if err != nil {
		h.serverError(w, fmt.Sprintf("An error occurred while retrieving reviews for user ID %d", userID), err)
		return
	}
	h.writeJSON(w, reviews)
}

// AddReview stores a review owned by the authenticated caller. Any UserId in
// the payload is replaced with the id from the verified token.
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var review *models.Review
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&review); err != nil {
		if !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	} else if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if review == nil {
		http.Error(w, "Review data is null", http.StatusBadRequest)
		return
	}

	claim, ok := auth.UserIDClaim(r.Context())
	if !ok {
		http.Error(w, "User not authenticated", http.StatusUnauthorized)
		return
	}

	const failure = "An error occurred while adding a review"

	userID, err := strconv.ParseInt(claim, 10, 64)
	if err != nil {
		h.serverError(w, failure, fmt.Errorf("parse user id claim %q: %w", claim, err))
		return
	}
	review.UserID = userID

	added, err := h.Service.AddReview(r.Context(), *review)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusBadRequest)
			return
		}
		h.serverError(w, failure, err)
		return
	}

	user, err := h.Users.GetUserByID(r.Context(), review.UserID)
	if err != nil {
		h.serverError(w, failure, err)
		return
	}
	if user == nil {
		h.logf("review %d persisted but owner %d was not found", added.ReviewID, review.UserID)
		http.Error(w, "User not found", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, models.NewReviewResponse(added, *user))
}

func (h *ReviewHandler) logf(format string, args ...interface{}) {
	if h.ErrorLog != nil {
		h.ErrorLog.Printf(format, args...)
	}
}
