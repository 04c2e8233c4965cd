package entity

// Semental representa un macho reproductor. El nombre es único.
type Semental struct {
	ID             int
	Nombre         string
	Raza           string
	TasaFertilidad float64
	UsuarioID      int
}
