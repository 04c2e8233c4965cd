package dto

import (
	"fmt"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fecha es una fecha de calendario (sin hora) serializada como "AAAA-MM-DD",
// el formato que usa el frontend en todos los campos de fecha.
type Fecha struct {
	time.Time
}

// NewFecha construye una Fecha a partir de un time.Time.
func NewFecha(t time.Time) Fecha {
	return Fecha{t}
}

// MarshalJSON serializa como "AAAA-MM-DD".
func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON acepta "AAAA-MM-DD" o null.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q (se espera AAAA-MM-DD)", s)
	}
	f.Time = t
	return nil
}

// IsZero reporta si la fecha no fue enviada.
func (f Fecha) IsZero() bool {
	return f.Time.IsZero()
}
