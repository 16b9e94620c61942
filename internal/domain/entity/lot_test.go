package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

func TestNewLot_RemanenteIgualARecibido(t *testing.T) {
	lot := entity.NewLot("prod-1", 100, nil)

	assert.Equal(t, int64(100), lot.ReceivedQuantity)
	assert.Equal(t, int64(100), lot.RemainingQuantity,
		"el remanente debe nacer igual a la cantidad recibida")
	assert.Nil(t, lot.ExpirationDate)
}

func TestNewLot_ConVencimiento(t *testing.T) {
	exp := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	lot := entity.NewLot("prod-1", 30, &exp)

	assert.NotNil(t, lot.ExpirationDate)
	assert.True(t, lot.ExpirationDate.Equal(exp))
}

func TestExpiringAlertKind_UmbralesIndependientes(t *testing.T) {
	assert.Equal(t, "expiring_30", entity.ExpiringAlertKind(30))
	assert.Equal(t, "expiring_7", entity.ExpiringAlertKind(7))
	assert.NotEqual(t, entity.ExpiringAlertKind(7), entity.ExpiringAlertKind(30),
		"cada umbral mantiene su propia población de alertas")
}
