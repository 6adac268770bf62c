package authz

import (
	"reflect"
	"testing"
)

func TestParseRoleClaim_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "lista de strings (decodificada como []any)",
			in:   []any{"ROLE_USER", "ROLE_ADMIN"},
			want: []string{"ROLE_ADMIN", "ROLE_USER"},
		},
		{
			name: "string delimitado por comas",
			in:   "ROLE_USER, ROLE_ADMIN",
			want: []string{"ROLE_ADMIN", "ROLE_USER"},
		},
		{
			name: "string con un solo rol",
			in:   "ROLE_USER",
			want: []string{"ROLE_USER"},
		},
		{
			name: "ausente",
			in:   nil,
			want: []string{},
		},
		{
			name: "forma desconocida => fail-closed",
			in:   map[string]any{"admin": true},
			want: []string{},
		},
		{
			name: "numero => fail-closed",
			in:   float64(7),
			want: []string{},
		},
		{
			name: "lista con elementos no-string: se descartan solo esos",
			in:   []any{"ROLE_USER", 42, nil},
			want: []string{"ROLE_USER"},
		},
		{
			name: "elementos vacíos y espacios se limpian",
			in:   "ROLE_USER,, ,",
			want: []string{"ROLE_USER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRoleClaim(tt.in).Resolve().List()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Resolve().List() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleClaim_NoNormalization(t *testing.T) {
	// Los roles se guardan verbatim: sin case-folding ni prefijos automáticos.
	set := ParseRoleClaim("role_admin,ADMIN").Resolve()
	if set.Has(RoleAdmin) {
		t.Fatal("role_admin / ADMIN no deben satisfacer ROLE_ADMIN")
	}
	if !set.Has("role_admin") || !set.Has("ADMIN") {
		t.Fatal("los tokens deben conservarse tal cual")
	}
}

func TestIdentity_Predicates(t *testing.T) {
	admin := NewIdentity("ana", []string{RoleAdmin})
	user := NewIdentity("bruno", []string{RoleUser})
	norole := NewIdentity("carla", nil)
	anon := NewIdentity("", nil)

	if !admin.IsAdmin() || !admin.HasRecognizedRole() {
		t.Fatal("admin debe ser admin y tener rol reconocido")
	}
	if user.IsAdmin() {
		t.Fatal("user no es admin")
	}
	if !user.HasRecognizedRole() {
		t.Fatal("ROLE_USER es rol reconocido")
	}
	if norole.HasRecognizedRole() {
		t.Fatal("identidad sin roles no pasa el gate")
	}
	if !norole.IsAuthenticated() {
		t.Fatal("username sin roles sigue autenticado (fail-closed solo en privilegios)")
	}
	if anon.IsAuthenticated() {
		t.Fatal("sin username no hay autenticación")
	}
}

func TestIdentity_CanAccessRecord(t *testing.T) {
	tests := []struct {
		name  string
		id    Identity
		owner string
		want  bool
	}{
		{"dueño accede", NewIdentity("bruno", []string{RoleUser}), "bruno", true},
		{"no-dueño no accede", NewIdentity("bruno", []string{RoleUser}), "ana", false},
		{"admin accede a todo", NewIdentity("ana", []string{RoleAdmin}), "bruno", true},
		{"anónimo nunca accede", NewIdentity("", nil), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.CanAccessRecord(tt.owner); got != tt.want {
				t.Fatalf("CanAccessRecord(%q) = %v, want %v", tt.owner, got, tt.want)
			}
		})
	}
}

func TestIdentity_CanAccessAll(t *testing.T) {
	user := NewIdentity("bruno", []string{RoleUser})
	admin := NewIdentity("ana", []string{RoleAdmin})

	if !user.CanAccessAll([]string{"bruno", "bruno"}) {
		t.Fatal("conjunto 100% propio debe permitirse")
	}
	if user.CanAccessAll([]string{"bruno", "ana"}) {
		t.Fatal("conjunto mixto debe negarse completo (todo-o-nada)")
	}
	if !user.CanAccessAll(nil) {
		t.Fatal("conjunto vacío se permite trivialmente")
	}
	if !admin.CanAccessAll([]string{"bruno", "carla"}) {
		t.Fatal("admin ve cualquier conjunto")
	}
}
