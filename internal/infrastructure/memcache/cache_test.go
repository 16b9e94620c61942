package memcache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/infrastructure/memcache"
)

func TestCache_GetSet(t *testing.T) {
	c := memcache.New(8)

	_, ok := c.Get("alerts:low_stock")
	assert.False(t, ok, "cache vacío debe ser miss")

	c.Set("alerts:low_stock", []string{"a"}, time.Minute)
	v, ok := c.Get("alerts:low_stock")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)
}

func TestCache_TTLExpira(t *testing.T) {
	c := memcache.New(8)
	c.Set("k", 1, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok, "una entrada expirada debe ser miss")
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := memcache.New(8)
	c.Set("alerts:low_stock", 1, time.Minute)
	c.Set("alerts:expiring_30", 2, time.Minute)
	c.Set("reports:stock", 3, time.Minute)

	c.InvalidatePrefix("alerts:")

	_, ok := c.Get("alerts:low_stock")
	assert.False(t, ok)
	_, ok = c.Get("alerts:expiring_30")
	assert.False(t, ok)
	_, ok = c.Get("reports:stock")
	assert.True(t, ok, "claves con otro prefijo no deben invalidarse")
}

func TestCache_RespetaCota(t *testing.T) {
	c := memcache.New(4)
	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, time.Minute)
	}
	assert.LessOrEqual(t, c.Len(), 4, "el cache nunca debe superar su cota")
}

func TestCache_SobrescribirNoEvicta(t *testing.T) {
	c := memcache.New(2)
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("a", 3, time.Minute) // misma clave: no debe expulsar a "b"

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = c.Get("b")
	assert.True(t, ok)
}
