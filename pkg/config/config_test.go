package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []int{30}, cfg.Alert.ExpiryDays)
	assert.Equal(t, 300, cfg.Alert.CacheTTLSeconds)
	assert.Equal(t, 128, cfg.Alert.CacheMaxEntries)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_UmbralesDesdeEnv(t *testing.T) {
	t.Setenv("ALERT_EXPIRY_DAYS", "30, 7,15")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{30, 7, 15}, cfg.Alert.ExpiryDays)
}

func TestLoad_UmbralesInvalidosSeDescartan(t *testing.T) {
	t.Setenv("ALERT_EXPIRY_DAYS", "0,-5,abc,14")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{14}, cfg.Alert.ExpiryDays)
}

func TestLoad_UmbralesRepetidosSeDescartan(t *testing.T) {
	t.Setenv("ALERT_EXPIRY_DAYS", "30,7,30,7,15")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{30, 7, 15}, cfg.Alert.ExpiryDays)
}

func TestLoad_SinUmbralesFalla(t *testing.T) {
	t.Setenv("ALERT_EXPIRY_DAYS", "0,abc")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:w/ord",
		DBName: "inventarios", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford")
	assert.Contains(t, dsn, "sslmode=disable")
}
