package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	ProfileID uuid.UUID
	Type      string
}

type tokenClaims struct {
	ProfileID string `json:"profile_id"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(raw string) (Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}

	profileID, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return Claims{}, fmt.Errorf("invalid profile_id claim: %w", err)
	}

	return Claims{ProfileID: profileID, Type: claims.Type}, nil
}
