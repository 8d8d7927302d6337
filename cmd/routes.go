package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"bankingBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, requestID, app.logRequest, secureHeaders, makeResponseJSON)
	customerMiddleware := alice.New(app.JWTMiddlewareWithRole(models.RoleCustomer))

	mux := pat.New()

	// Reviews
	mux.Get("/api/review", http.HandlerFunc(app.reviewHandler.GetAllReviews))
	mux.Get("/api/review/:userId", http.HandlerFunc(app.reviewHandler.GetReviewsByUserID))
	mux.Post("/api/review", customerMiddleware.ThenFunc(app.reviewHandler.AddReview))

	return standardMiddleware.Then(mux)
}
