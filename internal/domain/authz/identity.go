package authz

import "strings"

// Roles reconocidos por el servicio. Los tokens deben traer el prefijo
// ROLE_ tal cual; no se normaliza ni se agrega automáticamente.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Identity es la identidad autenticada del request. Se construye una vez
// por request a partir de los claims verificados y se pasa explícitamente
// por handler -> service; nunca vive en estado global.
type Identity struct {
	Username string
	Roles    RoleSet
}

func NewIdentity(username string, roles []string) Identity {
	return Identity{
		Username: strings.TrimSpace(username),
		Roles:    NewRoleSet(roles),
	}
}

func (id Identity) IsAuthenticated() bool {
	return id.Username != ""
}

func (id Identity) IsAdmin() bool {
	return id.Roles.Has(RoleAdmin)
}

// HasRecognizedRole indica si la identidad puede usar los endpoints
// role-gated (equivalente a exigir USER o ADMIN en cada operación).
func (id Identity) HasRecognizedRole() bool {
	return id.Roles.Has(RoleUser) || id.Roles.Has(RoleAdmin)
}

// CanAccessRecord decide lectura/escritura/borrado sobre un registro:
// admin siempre, si no, solo el dueño.
func (id Identity) CanAccessRecord(ownerUsername string) bool {
	if id.IsAdmin() {
		return true
	}
	return id.Username != "" && id.Username == ownerUsername
}

// CanAccessAll decide acceso todo-o-nada sobre un conjunto de dueños:
// admin siempre; si no, cada registro del conjunto debe ser del caller.
// Nunca se filtra un subconjunto: o se ve todo, o nada.
func (id Identity) CanAccessAll(owners []string) bool {
	if id.IsAdmin() {
		return true
	}
	for _, owner := range owners {
		if !id.CanAccessRecord(owner) {
			return false
		}
	}
	return true
}
