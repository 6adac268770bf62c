package jwtauth

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-for-health-service"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	return signed
}

func baseClaims(sub string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func TestNewVerifier_EmptySecret(t *testing.T) {
	if _, err := NewVerifier("  "); err == nil {
		t.Fatal("NewVerifier debe fallar con secreto vacío")
	}
}

func TestVerify_ValidToken(t *testing.T) {
	v, err := NewVerifier(testSecret)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	claims := baseClaims("ana")
	claims["roles"] = []string{"ROLE_USER", "ROLE_ADMIN"}

	got, err := v.Verify(context.Background(), signToken(t, testSecret, claims))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.Username != "ana" {
		t.Fatalf("Username = %q, want ana", got.Username)
	}
	if want := []string{"ROLE_ADMIN", "ROLE_USER"}; !reflect.DeepEqual(got.Roles, want) {
		t.Fatalf("Roles = %v, want %v", got.Roles, want)
	}
}

func TestVerify_RoleClaimShapes(t *testing.T) {
	v, _ := NewVerifier(testSecret)

	tests := []struct {
		name   string
		mutate func(jwt.MapClaims)
		want   []string
	}{
		{
			name:   "roles como string CSV",
			mutate: func(c jwt.MapClaims) { c["roles"] = "ROLE_USER,ROLE_ADMIN" },
			want:   []string{"ROLE_ADMIN", "ROLE_USER"},
		},
		{
			name:   "fallback a la key role",
			mutate: func(c jwt.MapClaims) { c["role"] = "ROLE_USER" },
			want:   []string{"ROLE_USER"},
		},
		{
			name:   "sin claim de roles",
			mutate: func(jwt.MapClaims) {},
			want:   []string{},
		},
		{
			name:   "claim ilegible => cero roles, pero autentica",
			mutate: func(c jwt.MapClaims) { c["roles"] = map[string]any{"x": 1} },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := baseClaims("bruno")
			tt.mutate(claims)

			got, err := v.Verify(context.Background(), signToken(t, testSecret, claims))
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if got.Username != "bruno" {
				t.Fatalf("Username = %q, want bruno", got.Username)
			}
			if !reflect.DeepEqual(got.Roles, tt.want) {
				t.Fatalf("Roles = %v, want %v", got.Roles, tt.want)
			}
		})
	}
}

func TestVerify_Invalid(t *testing.T) {
	v, _ := NewVerifier(testSecret)

	expired := baseClaims("ana")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noExp := jwt.MapClaims{"sub": "ana"}

	noSub := baseClaims("")

	tests := []struct {
		name  string
		token string
	}{
		{"token vacío", ""},
		{"basura", "not.a.token"},
		{"firma con otro secreto", signToken(t, "otro-secreto-distinto", baseClaims("ana"))},
		{"expirado con firma válida", signToken(t, testSecret, expired)},
		{"sin exp", signToken(t, testSecret, noExp)},
		{"sin subject", signToken(t, testSecret, noSub)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Verify(context.Background(), tt.token); err == nil {
				t.Fatal("Verify debió fallar")
			}
		})
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	v, _ := NewVerifier(testSecret)

	// alg=none firmado con el tipo inseguro del paquete jwt
	token := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims("ana"))
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := v.Verify(context.Background(), signed); err == nil {
		t.Fatal("Verify debe rechazar alg=none")
	}
}
