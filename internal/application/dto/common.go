// Package dto define los contratos JSON de la API (requests y responses).
package dto

import "time"

// Formatos de fecha usados en los contratos JSON.
const (
	timeFormat = time.RFC3339
	dateFormat = "2006-01-02"
)

// ErrorResponse es la envoltura estándar de errores de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest encapsula los parámetros de paginación de los listados.
type PageRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Normalize acota los valores a rangos razonables.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 || p.Limit > 200 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
