// Package memcache implementa un cache en memoria con TTL y cota de tamaño,
// pensado para frontear lecturas de alertas. Se inyecta explícitamente en
// quien lo necesite; no hay instancia global.
package memcache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache almacena resultados con tiempo de vida. No es fuente de verdad:
// cualquier escritura que cambie el estado subyacente debe invalidarlo
// sincrónicamente (Delete o InvalidatePrefix).
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]entry
}

// New construye el cache. maxEntries <= 0 usa una cota por defecto de 128.
func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = 128
	}
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
	}
}

// Get devuelve el valor si existe y no ha expirado.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set guarda un valor con el TTL indicado. Si el cache está lleno descarta
// primero las entradas expiradas y, si sigue lleno, la más próxima a expirar.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
}

// Delete elimina una entrada específica.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidatePrefix elimina todas las claves con el prefijo dado.
// Útil para invalidar grupos, p.ej. "alerts:".
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// Len devuelve el número de entradas almacenadas (incluidas expiradas aún no purgadas).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictLocked(now time.Time) {
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	var victim string
	var soonest time.Time
	for k, e := range c.entries {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim = k
			soonest = e.expiresAt
		}
	}
	delete(c.entries, victim)
}
