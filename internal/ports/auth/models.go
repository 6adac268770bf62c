package auth

// Claims representa la información extraída de un token verificado.
// Roles viene ya normalizado por el verifier (lista plana, sin duplicados
// garantizados; el dominio la convierte en set).
type Claims struct {
	Username string
	Roles    []string
}
