package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
)

var validate = validator.New()

// Validate valida un DTO con go-playground/validator y traduce los fallos
// a domain.ErrInvalidInput con un mensaje legible por campo.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, fieldMessage(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("el campo '%s' es obligatorio", e.Field())
	case "uuid":
		return fmt.Sprintf("el campo '%s' debe ser un UUID válido", e.Field())
	case "gt":
		return fmt.Sprintf("el campo '%s' debe ser mayor que %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("el campo '%s' debe ser mayor o igual que %s", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("el campo '%s' debe tener formato %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("el campo '%s' no es válido", e.Field())
	}
}
