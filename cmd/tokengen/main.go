// Command tokengen mints an access token the review API accepts, for local
// testing of the Customer-only endpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bankingBack/internal/config"
	"bankingBack/internal/models"
	"bankingBack/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	userID := flag.String("user", "", "user id to embed in the token")
	role := flag.String("role", models.RoleCustomer, "role claim")
	ttl := flag.Duration("ttl", cfg.Auth.AccessTTL, "token lifetime")
	secret := flag.String("secret", cfg.Auth.JWTSecret, "HMAC signing secret")
	flag.Parse()

	tokens, err := utils.NewManager(*secret)
	if err != nil {
		log.Fatal(err)
	}

	token, err := tokens.NewJWT(*userID, *role, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
