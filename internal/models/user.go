package models

import (
	"github.com/golang-jwt/jwt"
)

const RoleCustomer = "Customer"

type User struct {
	UserID   int64  `json:"UserId"`
	Username string `json:"Username"`
}

type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
