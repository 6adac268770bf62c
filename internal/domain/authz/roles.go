package authz

import (
	"sort"
	"strings"
)

// RoleSet es el conjunto de roles del caller. Los tokens se guardan
// verbatim (case-sensitive, con prefijo incluido).
type RoleSet map[string]struct{}

func NewRoleSet(roles []string) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// List devuelve los roles ordenados (salida estable para logs y tests).
func (s RoleSet) List() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// RoleClaimKind distingue las formas en que el claim de roles puede venir
// en el token: lista de strings, string delimitado por comas, o ausente.
type RoleClaimKind int

const (
	RoleClaimAbsent RoleClaimKind = iota
	RoleClaimList
	RoleClaimDelimited
)

// RoleClaim modela el claim de roles como variante etiquetada. Se resuelve
// una sola vez, al construir la identidad del request.
type RoleClaim struct {
	Kind  RoleClaimKind
	List  []string
	Value string
}

// ParseRoleClaim interpreta el valor crudo del claim (lo que devuelva el
// decoder JSON del token). Formas no reconocidas se tratan como ausente:
// política fail-closed, un claim ilegible nunca otorga roles, pero tampoco
// invalida la autenticación del username.
func ParseRoleClaim(v any) RoleClaim {
	switch val := v.(type) {
	case nil:
		return RoleClaim{Kind: RoleClaimAbsent}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				// elemento no-string: se descarta solo ese elemento
				continue
			}
			out = append(out, s)
		}
		return RoleClaim{Kind: RoleClaimList, List: out}
	case []string:
		return RoleClaim{Kind: RoleClaimList, List: val}
	case string:
		return RoleClaim{Kind: RoleClaimDelimited, Value: val}
	default:
		return RoleClaim{Kind: RoleClaimAbsent}
	}
}

// Resolve normaliza la variante a un RoleSet.
func (c RoleClaim) Resolve() RoleSet {
	switch c.Kind {
	case RoleClaimList:
		return NewRoleSet(c.List)
	case RoleClaimDelimited:
		return NewRoleSet(strings.Split(c.Value, ","))
	default:
		return RoleSet{}
	}
}
