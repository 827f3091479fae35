package jwttoken

import (
	"bluecarbon/internal/platform/middleware"
)

// MiddlewareAdapter adapts JWTService to the middleware.JWTValidator
// interface without the middleware package importing this one.
type MiddlewareAdapter struct {
	svc *JWTService
}

func NewMiddlewareAdapter(svc *JWTService) *MiddlewareAdapter {
	return &MiddlewareAdapter{svc: svc}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.svc.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{Account: claims.Account}, nil
}
