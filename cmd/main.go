package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"bankingBack/internal/config"
	"bankingBack/internal/migrations"
	"bankingBack/internal/repositories"
	"bankingBack/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		errorLog.Fatal(err)
	}

	addr := flag.String("addr", cfg.Server.Address, "HTTP network address")
	flag.Parse()

	dialect, _ := repositories.ParseDialect(cfg.Database.Driver)

	db, err := openDB(string(dialect), cfg.Database.URL, cfg.Database.MaxIdleConns)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := migrations.Up(ctx, db, string(dialect))
		cancel()
		if err != nil {
			errorLog.Fatalf("migrate: %v", err)
		}
		infoLog.Println("Database migrations applied")
	}

	rdb, err := openRedis(cfg)
	if err != nil {
		errorLog.Printf("Redis unavailable, user cache disabled: %v", err)
	} else if rdb != nil {
		defer rdb.Close()
		infoLog.Printf("User cache enabled on %s", cfg.Redis.Addr)
	}

	tokens, err := utils.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		errorLog.Fatal(err)
	}

	app := initializeApp(buildDeps(cfg, db, dialect, rdb, tokens, errorLog, infoLog))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization", requestIDHeader},
	})

	srv := &http.Server{
		Addr:         *addr,
		ErrorLog:     errorLog,
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		errorLog.Fatal(err)
	}
}
