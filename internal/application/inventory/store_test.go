package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// fakeStore es un almacén en memoria que implementa TxRunner y los puertos de
// repositorio. El mutex serializa las transacciones completas (equivalente a
// los bloqueos de fila) y el snapshot/restore emula el rollback: si fn
// devuelve error, el estado queda exactamente como antes.
type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	lots      map[string]*entity.Lot
	movements []*entity.Movement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		lots:     make(map[string]*entity.Lot),
	}
}

func (s *fakeStore) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapProducts, snapLots, snapMovements := s.snapshot()
	err := fn(&fakeProductRepo{s: s}, &fakeLotRepo{s: s}, &fakeMovementRepo{s: s})
	if err != nil {
		s.products, s.lots, s.movements = snapProducts, snapLots, snapMovements
	}
	return err
}

func (s *fakeStore) snapshot() (map[string]*entity.Product, map[string]*entity.Lot, []*entity.Movement) {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	lots := make(map[string]*entity.Lot, len(s.lots))
	for id, l := range s.lots {
		cp := *l
		lots[id] = &cp
	}
	movements := make([]*entity.Movement, len(s.movements))
	for i, m := range s.movements {
		cp := *m
		movements[i] = &cp
	}
	return products, lots, movements
}

// seedProduct inserta un producto directamente (sin transacción).
func (s *fakeStore) seedProduct(p *entity.Product) *entity.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
	return p
}

// seedLot inserta un lote directamente (sin transacción).
func (s *fakeStore) seedLot(l *entity.Lot) *entity.Lot {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.lots[l.ID] = &cp
	return l
}

func (s *fakeStore) productByID(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (s *fakeStore) lotByID(id string) *entity.Lot {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lots[id]
	if !ok {
		return nil
	}
	cp := *l
	return &cp
}

func (s *fakeStore) sumRemaining(productID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, l := range s.lots {
		if l.ProductID == productID {
			sum += l.RemainingQuantity
		}
	}
	return sum
}

func (s *fakeStore) allMovements() []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Movement, len(s.movements))
	for i, m := range s.movements {
		cp := *m
		out[i] = &cp
	}
	return out
}

// ── Repositorios sobre el almacén ─────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	all, _ := r.ListAll(context.Background())
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *fakeProductRepo) ListBelowMinimum(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CurrentQuantity < p.MinimumQuantity {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentQuantity = quantity
	p.UpdatedAt = time.Now()
	return nil
}

type fakeLotRepo struct{ s *fakeStore }

func (r *fakeLotRepo) Create(_ context.Context, l *entity.Lot) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()
	cp := *l
	r.s.lots[l.ID] = &cp
	return nil
}

func (r *fakeLotRepo) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeLotRepo) ListAvailableForUpdate(_ context.Context, productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID && l.RemainingQuantity > 0 {
			cp := *l
			out = append(out, &cp)
		}
	}
	// Orden FEFO: vencimiento ascendente, sin vencimiento al final,
	// empates por creación y por ID.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ExpirationDate == nil && b.ExpirationDate == nil:
			// empate: cae al criterio de creación
		case a.ExpirationDate == nil:
			return false
		case b.ExpirationDate == nil:
			return true
		case !a.ExpirationDate.Equal(*b.ExpirationDate):
			return a.ExpirationDate.Before(*b.ExpirationDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *fakeLotRepo) ListExpiringWithin(_ context.Context, after, until time.Time) ([]*repository.ExpiringLot, error) {
	var out []*repository.ExpiringLot
	for _, l := range r.s.lots {
		if l.RemainingQuantity <= 0 || l.ExpirationDate == nil {
			continue
		}
		if !l.ExpirationDate.After(after) || l.ExpirationDate.After(until) {
			continue
		}
		p := r.s.products[l.ProductID]
		e := &repository.ExpiringLot{Lot: *l}
		if p != nil {
			e.ProductName = p.Name
			e.ProductSKU = p.SKU
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Lot.ExpirationDate.Before(*out[j].Lot.ExpirationDate)
	})
	return out, nil
}

func (r *fakeLotRepo) UpdateRemaining(_ context.Context, id string, remaining int64) error {
	l, ok := r.s.lots[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.RemainingQuantity = remaining
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByLot(_ context.Context, lotID string, limit, offset int) ([]*entity.Movement, error) {
	var all []*entity.Movement
	for _, m := range r.s.movements {
		if m.LotID == lotID {
			cp := *m
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OccurredAt.After(all[j].OccurredAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// fakeCache registra las invalidaciones de prefijo.
type fakeCache struct {
	mu            sync.Mutex
	invalidations []string
}

func (c *fakeCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations = append(c.invalidations, prefix)
}

func (c *fakeCache) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.invalidations)
}
