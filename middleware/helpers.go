package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtClaimRole    = "role"
	jwtClaimSubject = "sub"
)

func withClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

func GetRoleFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("claims not found in context or invalid type")
	}

	roleClaim, ok := claims[jwtClaimRole]
	if !ok {
		return "", fmt.Errorf("missing '%s' claim in token", jwtClaimRole)
	}

	role, ok := roleClaim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for '%s' claim: expected string, got %T", jwtClaimRole, roleClaim)
	}

	switch role {
	case RoleOrganizer:
		return role, nil
	default:
		return "", fmt.Errorf("invalid role value in claim: %q", role)
	}
}

// GetSubjectFromContext returns the "sub" claim, or "" when absent.
func GetSubjectFromContext(ctx context.Context) string {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims[jwtClaimSubject].(string)
	return sub
}
