package alerts_test

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

// fakeAlertStore es un almacén en memoria para las reconciliaciones de
// alertas. Implementa AlertTxRunner y los repositorios que la reconciliación
// necesita; el índice único parcial de la tabla real se emula rechazando una
// segunda alerta activa por (tipo, entidad).
type fakeAlertStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	lots     map[string]*entity.Lot
	alerts   []*entity.Alert

	// beforeCreate se ejecuta justo antes de cada Create de alerta; permite
	// intercalar escrituras de otra reconciliación en mitad de la pasada.
	beforeCreate func(*entity.Alert)
}

func newFakeAlertStore() *fakeAlertStore {
	return &fakeAlertStore{
		products: make(map[string]*entity.Product),
		lots:     make(map[string]*entity.Lot),
	}
}

func (s *fakeAlertStore) RunAlerts(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	alertRepo repository.AlertRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotAlerts()
	err := fn(&alertProductRepo{s: s}, &alertLotRepo{s: s}, &alertAlertRepo{s: s})
	if err != nil {
		s.alerts = snap
	}
	return err
}

func (s *fakeAlertStore) snapshotAlerts() []*entity.Alert {
	out := make([]*entity.Alert, len(s.alerts))
	for i, a := range s.alerts {
		cp := *a
		out[i] = &cp
	}
	return out
}

func (s *fakeAlertStore) seedProduct(p *entity.Product) *entity.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
	return p
}

func (s *fakeAlertStore) seedLot(l *entity.Lot) *entity.Lot {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.lots[l.ID] = &cp
	return l
}

func (s *fakeAlertStore) setQuantity(productID string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[productID].CurrentQuantity = quantity
}

func (s *fakeAlertStore) setRemaining(lotID string, remaining int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lots[lotID].RemainingQuantity = remaining
}

// injectActiveAlert inserta una alerta activa directo en el almacén, como si
// otra transacción ya comiteada la hubiera creado.
func (s *fakeAlertStore) injectActiveAlert(kind, entityID, entityKind string) *entity.Alert {
	a := &entity.Alert{
		ID:         uuid.NewString(),
		AlertKind:  kind,
		EntityID:   entityID,
		EntityKind: entityKind,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	s.alerts = append(s.alerts, a)
	return a
}

func (s *fakeAlertStore) allAlerts() []*entity.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotAlerts()
}

func (s *fakeAlertStore) alertsFor(kind, entityID string) []*entity.Alert {
	var out []*entity.Alert
	for _, a := range s.allAlerts() {
		if a.AlertKind == kind && a.EntityID == entityID {
			out = append(out, a)
		}
	}
	return out
}

// ── Repositorios sobre el almacén ─────────────────────────────────────────────

type alertProductRepo struct{ s *fakeAlertStore }

func (r *alertProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }

func (r *alertProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *alertProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *alertProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return r.ListAll(context.Background())
}

func (r *alertProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

func (r *alertProductRepo) ListBelowMinimum(_ context.Context) ([]*entity.Product, error) {
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

func (r *alertProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentQuantity = quantity
	return nil
}

type alertLotRepo struct{ s *fakeAlertStore }

func (r *alertLotRepo) Create(_ context.Context, _ *entity.Lot) error { return nil }

func (r *alertLotRepo) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *alertLotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.GetByID(ctx, id)
}

func (r *alertLotRepo) ListAvailableForUpdate(_ context.Context, _ string) ([]*entity.Lot, error) {
	return nil, nil
}

func (r *alertLotRepo) ListExpiringWithin(_ context.Context, after, until time.Time) ([]*repository.ExpiringLot, error) {
	var out []*repository.ExpiringLot
	for _, l := range r.s.lots {
		if l.RemainingQuantity <= 0 || l.ExpirationDate == nil {
			continue
		}
		if !l.ExpirationDate.After(after) || l.ExpirationDate.After(until) {
			continue
		}
		e := &repository.ExpiringLot{Lot: *l}
		if p, ok := r.s.products[l.ProductID]; ok {
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

func (r *alertLotRepo) UpdateRemaining(_ context.Context, id string, remaining int64) error {
	l, ok := r.s.lots[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.RemainingQuantity = remaining
	return nil
}

type alertAlertRepo struct{ s *fakeAlertStore }

func (r *alertAlertRepo) Create(_ context.Context, alert *entity.Alert) error {
	if r.s.beforeCreate != nil {
		r.s.beforeCreate(alert)
	}
	for _, a := range r.s.alerts {
		if a.IsActive && a.AlertKind == alert.AlertKind && a.EntityID == alert.EntityID && a.EntityKind == alert.EntityKind {
			return domain.ErrDuplicate
		}
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	alert.IsActive = true
	alert.CreatedAt = time.Now()
	cp := *alert
	cp.Metadata = copyMetadata(alert.Metadata)
	r.s.alerts = append(r.s.alerts, &cp)
	return nil
}

func (r *alertAlertRepo) ListActive(_ context.Context, kind string) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.s.alerts {
		if !a.IsActive {
			continue
		}
		if kind != "" && a.AlertKind != kind {
			continue
		}
		cp := *a
		cp.Metadata = copyMetadata(a.Metadata)
		out = append(out, &cp)
	}
	return out, nil
}

func (r *alertAlertRepo) Deactivate(_ context.Context, id string) error {
	for _, a := range r.s.alerts {
		if a.ID == id {
			if !a.IsActive {
				return domain.ErrNotFound
			}
			a.IsActive = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
