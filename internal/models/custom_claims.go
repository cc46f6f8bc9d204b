package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by API tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Scope     string `json:"scope"`
	TokenType string `json:"token_type"`
}
