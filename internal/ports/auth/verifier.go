package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Cualquier error (firma, expiración, parseo) deja el request anónimo;
// nunca hay autenticación parcial.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
