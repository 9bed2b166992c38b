package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"

	"github.com/totegamma/longrest/core"
)

var tracer = otel.Tracer("auth")

type service struct {
	config core.Config
}

// NewService creates a new auth service
func NewService(config core.Config) core.AuthService {
	return &service{config}
}

// Validate verifies an HS256 bearer token and returns the user it names
func (s *service) Validate(ctx context.Context, token string) (core.Principal, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Validate")
	defer span.End()

	if s.config.JWTSecret == "" {
		err := fmt.Errorf("jwt secret is not configured")
		span.RecordError(err)
		return core.Principal{}, err
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		span.RecordError(err)
		return core.Principal{}, errors.Wrap(err, "invalid token")
	}

	if claims.Subject == "" {
		return core.Principal{}, fmt.Errorf("token has no subject")
	}

	if s.config.Audience != "" && !slices.Contains(claims.Audience, s.config.Audience) {
		return core.Principal{}, fmt.Errorf("jwt is not for this audience")
	}

	return core.Principal{UserID: claims.Subject}, nil
}
