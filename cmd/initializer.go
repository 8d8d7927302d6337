package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"bankingBack/internal/cache"
	"bankingBack/internal/config"
	"bankingBack/internal/handlers"
	"bankingBack/internal/repositories"
	"bankingBack/internal/services"
	"bankingBack/utils"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	tokens        *utils.Manager
	reviewHandler *handlers.ReviewHandler
}

// deps holds the collaborators initializeApp wires into the handlers.
type deps struct {
	reviews  handlers.ReviewService
	users    handlers.UserLookup
	tokens   *utils.Manager
	errorLog *log.Logger
	infoLog  *log.Logger
	expose   bool
}

func initializeApp(d deps) *application {
	reviewHandler := &handlers.ReviewHandler{
		Service:      d.reviews,
		Users:        d.users,
		ErrorLog:     d.errorLog,
		ExposeErrors: d.expose,
	}

	return &application{
		errorLog:      d.errorLog,
		infoLog:       d.infoLog,
		tokens:        d.tokens,
		reviewHandler: reviewHandler,
	}
}

// buildDeps wires repositories, services and the optional Redis user cache
// on top of an open database.
func buildDeps(cfg config.Config, db *sql.DB, dialect repositories.Dialect, rdb *redis.Client, tokens *utils.Manager, errorLog, infoLog *log.Logger) deps {
	reviewsRepo := &repositories.ReviewRepository{DB: db, Dialect: dialect}
	userRepo := &repositories.UserRepository{DB: db, Dialect: dialect}

	authService := &services.AuthService{Users: userRepo, ErrorLog: errorLog}
	if rdb != nil {
		authService.Cache = cache.NewUserCache(rdb, cfg.Redis.UserTTL)
	}

	return deps{
		reviews:  &services.ReviewService{ReviewsRepo: reviewsRepo},
		users:    authService,
		tokens:   tokens,
		errorLog: errorLog,
		infoLog:  infoLog,
		expose:   cfg.Server.ExposeErrors,
	}
}

func openDB(driver, dsn string, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		db.Close()
		return nil, err
	}
	db.SetMaxIdleConns(maxIdle)
	log.Println("Successfully connected to database")
	return db, nil
}

// openRedis returns nil when no address is configured.
func openRedis(cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
