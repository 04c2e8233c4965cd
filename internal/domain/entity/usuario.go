package entity

// Tipos de documento de identidad aceptados en el registro.
const (
	DocumentoCC  = "CC" // cédula de ciudadanía
	DocumentoCE  = "CE" // cédula de extranjería
	DocumentoTI  = "TI" // tarjeta de identidad
	DocumentoPAS = "PAS"
)

// Usuario representa un usuario del sistema. El número de documento es el
// username para el login y es único.
type Usuario struct {
	ID              int
	Nombre          string
	Apellido        string
	TipoDocumento   string
	NumeroDocumento string
	HashedPassword  string // bcrypt, nunca en texto plano después de persistir
	Activo          bool
}

// NombreCompleto devuelve "Nombre Apellido" para denormalizar en movimientos.
func (u *Usuario) NombreCompleto() string {
	return u.Nombre + " " + u.Apellido
}
