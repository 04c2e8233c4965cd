package dto

// SignupRequest entrada para el registro de un usuario (password en texto, se hashea en el caso de uso).
type SignupRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=100"`
	Apellido        string `json:"apellido" validate:"required,min=1,max=100"`
	TipoDocumento   string `json:"tipo_documento" validate:"required,oneof=CC CE TI PAS"`
	NumeroDocumento string `json:"numero_documento" validate:"required,min=5,max=20"`
	Password        string `json:"password" validate:"required,min=8"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
	Activo          bool   `json:"is_activo"`
}

// TokenResponse salida del login: token de acceso más datos de presentación
// del usuario, tal como los espera el frontend.
type TokenResponse struct {
	AccessToken     string `json:"access_token"`
	TokenType       string `json:"token_type"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	NumeroDocumento string `json:"numero_documento"`
	TipoDocumento   string `json:"tipo_documento"`
}
