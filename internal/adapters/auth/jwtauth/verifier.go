package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animal-health-service/internal/domain/authz"
	"animal-health-service/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwt secret is empty")
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token is invalid")
	ErrNoSubject    = errors.New("token has no subject")
)

// Verifier implementa auth.AuthVerifier verificando JWTs HMAC-SHA256
// firmados con el secreto compartido con el servicio de usuarios.
// Verificación puramente local: sin revocación, sin refresh.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify valida firma y expiración (reloj de pared, sin leeway) y extrae
// username (sub) y roles. El claim de roles puede venir como lista o como
// string separado por comas, bajo "roles" o "role"; cualquier forma
// ilegible resuelve a cero roles sin invalidar la autenticación.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return auth.Claims{}, ErrNoSubject
	}

	return auth.Claims{
		Username: strings.TrimSpace(sub),
		Roles:    extractRoles(claims),
	}, nil
}

// extractRoles busca "roles" y si no existe cae a "role" (tokens viejos
// guardan un solo rol bajo esa key). Fail-closed: formas desconocidas
// resuelven a lista vacía.
func extractRoles(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"]
	if !ok || raw == nil {
		raw = claims["role"]
	}
	return authz.ParseRoleClaim(raw).Resolve().List()
}
