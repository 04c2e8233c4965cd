package usecase_test

import (
	"context"

	"github.com/porcigest/porcigest-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los repositorios reales: (nil, nil) cuando no existe la fila, copias para
// no compartir estado con el caller, y detalle con relaciones materializadas.

// ──────────────────────────────────────────────────────────────────────────────
// Cerdas
// ──────────────────────────────────────────────────────────────────────────────

type fakeCerdaRepo struct {
	seq   int
	items map[int]entity.Cerda
}

func newFakeCerdaRepo() *fakeCerdaRepo {
	return &fakeCerdaRepo{items: make(map[int]entity.Cerda)}
}

func (r *fakeCerdaRepo) Create(_ context.Context, c *entity.Cerda) error {
	r.seq++
	c.ID = r.seq
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCerdaRepo) GetByID(_ context.Context, id int) (*entity.Cerda, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCerdaRepo) GetByCodigo(_ context.Context, codigoID string) (*entity.Cerda, error) {
	for _, c := range r.items {
		if c.CodigoID == codigoID {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCerdaRepo) List(_ context.Context, skip, limit int) ([]*entity.Cerda, error) {
	out := make([]*entity.Cerda, 0, len(r.items))
	for id := 1; id <= r.seq; id++ {
		if c, ok := r.items[id]; ok {
			c := c
			out = append(out, &c)
		}
	}
	return paginar(out, skip, limit), nil
}

func (r *fakeCerdaRepo) Update(_ context.Context, c *entity.Cerda) error {
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCerdaRepo) Delete(_ context.Context, id int) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Sementales
// ──────────────────────────────────────────────────────────────────────────────

type fakeSementalRepo struct {
	seq   int
	items map[int]entity.Semental
}

func newFakeSementalRepo() *fakeSementalRepo {
	return &fakeSementalRepo{items: make(map[int]entity.Semental)}
}

func (r *fakeSementalRepo) Create(_ context.Context, s *entity.Semental) error {
	r.seq++
	s.ID = r.seq
	r.items[s.ID] = *s
	return nil
}

func (r *fakeSementalRepo) GetByID(_ context.Context, id int) (*entity.Semental, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSementalRepo) GetByNombre(_ context.Context, nombre string) (*entity.Semental, error) {
	for _, s := range r.items {
		if s.Nombre == nombre {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSementalRepo) List(_ context.Context, skip, limit int) ([]*entity.Semental, error) {
	out := make([]*entity.Semental, 0, len(r.items))
	for id := 1; id <= r.seq; id++ {
		if s, ok := r.items[id]; ok {
			s := s
			out = append(out, &s)
		}
	}
	return paginar(out, skip, limit), nil
}

func (r *fakeSementalRepo) Update(_ context.Context, s *entity.Semental) error {
	r.items[s.ID] = *s
	return nil
}

func (r *fakeSementalRepo) Delete(_ context.Context, id int) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Camadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeCamadaRepo struct {
	seq       int
	items     map[int]entity.Camada
	cerdas    *fakeCerdaRepo
	sementals *fakeSementalRepo
}

func newFakeCamadaRepo(cerdas *fakeCerdaRepo, sementals *fakeSementalRepo) *fakeCamadaRepo {
	return &fakeCamadaRepo{
		items:     make(map[int]entity.Camada),
		cerdas:    cerdas,
		sementals: sementals,
	}
}

func (r *fakeCamadaRepo) Create(_ context.Context, c *entity.Camada) error {
	r.seq++
	c.ID = r.seq
	guardada := *c
	guardada.Madre, guardada.Padre = nil, nil
	r.items[c.ID] = guardada
	return nil
}

func (r *fakeCamadaRepo) GetByID(_ context.Context, id int) (*entity.Camada, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCamadaRepo) GetDetail(ctx context.Context, id int) (*entity.Camada, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	c.Madre, _ = r.cerdas.GetByID(ctx, c.MadreID)
	c.Padre, _ = r.sementals.GetByID(ctx, c.PadreID)
	return &c, nil
}

func (r *fakeCamadaRepo) List(ctx context.Context, skip, limit int) ([]*entity.Camada, error) {
	out := make([]*entity.Camada, 0, len(r.items))
	for id := 1; id <= r.seq; id++ {
		if _, ok := r.items[id]; !ok {
			continue
		}
		c, _ := r.GetDetail(ctx, id)
		if c.Madre == nil || c.Padre == nil {
			continue // relación rota: igual que el INNER JOIN del repo real
		}
		out = append(out, c)
	}
	return paginar(out, skip, limit), nil
}

func (r *fakeCamadaRepo) Update(_ context.Context, c *entity.Camada) error {
	guardada := *c
	guardada.Madre, guardada.Padre = nil, nil
	r.items[c.ID] = guardada
	return nil
}

func (r *fakeCamadaRepo) Delete(_ context.Context, id int) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Lotes de engorde
// ──────────────────────────────────────────────────────────────────────────────

type fakeLoteRepo struct {
	seq     int
	items   map[int]entity.LoteEngorde
	camadas *fakeCamadaRepo
}

func newFakeLoteRepo(camadas *fakeCamadaRepo) *fakeLoteRepo {
	return &fakeLoteRepo{items: make(map[int]entity.LoteEngorde), camadas: camadas}
}

func (r *fakeLoteRepo) Create(_ context.Context, l *entity.LoteEngorde) error {
	r.seq++
	l.ID = r.seq
	guardado := *l
	guardado.CamadaOrigen = nil
	r.items[l.ID] = guardado
	return nil
}

func (r *fakeLoteRepo) GetByID(_ context.Context, id int) (*entity.LoteEngorde, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *fakeLoteRepo) GetByLoteIDStr(_ context.Context, loteIDStr string) (*entity.LoteEngorde, error) {
	for _, l := range r.items {
		if l.LoteIDStr == loteIDStr {
			l := l
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeLoteRepo) GetDetail(ctx context.Context, id int) (*entity.LoteEngorde, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	l.CamadaOrigen, _ = r.camadas.GetDetail(ctx, l.CamadaOrigenID)
	return &l, nil
}

func (r *fakeLoteRepo) List(ctx context.Context, skip, limit int) ([]*entity.LoteEngorde, error) {
	out := make([]*entity.LoteEngorde, 0, len(r.items))
	for id := 1; id <= r.seq; id++ {
		if _, ok := r.items[id]; !ok {
			continue
		}
		l, _ := r.GetDetail(ctx, id)
		if l.CamadaOrigen == nil || l.CamadaOrigen.Madre == nil || l.CamadaOrigen.Padre == nil {
			continue
		}
		out = append(out, l)
	}
	return paginar(out, skip, limit), nil
}

func (r *fakeLoteRepo) Update(_ context.Context, l *entity.LoteEngorde) error {
	guardado := *l
	guardado.CamadaOrigen = nil
	r.items[l.ID] = guardado
	return nil
}

func (r *fakeLoteRepo) Delete(_ context.Context, id int) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tratamientos
// ──────────────────────────────────────────────────────────────────────────────

type fakeTratamientoRepo struct {
	seq       int
	items     map[int]entity.Tratamiento
	cerdas    *fakeCerdaRepo
	sementals *fakeSementalRepo
	lotes     *fakeLoteRepo
}

func newFakeTratamientoRepo(cerdas *fakeCerdaRepo, sementals *fakeSementalRepo, lotes *fakeLoteRepo) *fakeTratamientoRepo {
	return &fakeTratamientoRepo{
		items:     make(map[int]entity.Tratamiento),
		cerdas:    cerdas,
		sementals: sementals,
		lotes:     lotes,
	}
}

func (r *fakeTratamientoRepo) Create(_ context.Context, t *entity.Tratamiento) error {
	r.seq++
	t.ID = r.seq
	guardado := *t
	guardado.Reproductora, guardado.Semental, guardado.LoteEngorde = nil, nil, nil
	r.items[t.ID] = guardado
	return nil
}

func (r *fakeTratamientoRepo) GetByID(_ context.Context, id int) (*entity.Tratamiento, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTratamientoRepo) GetDetail(ctx context.Context, id int) (*entity.Tratamiento, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	switch t.Objetivo.Tipo {
	case entity.ObjetivoReproductora:
		t.Reproductora, _ = r.cerdas.GetByID(ctx, t.Objetivo.ID)
	case entity.ObjetivoSemental:
		t.Semental, _ = r.sementals.GetByID(ctx, t.Objetivo.ID)
	case entity.ObjetivoLoteEngorde:
		t.LoteEngorde, _ = r.lotes.GetByID(ctx, t.Objetivo.ID)
	}
	return &t, nil
}

func (r *fakeTratamientoRepo) List(ctx context.Context, skip, limit int) ([]*entity.Tratamiento, error) {
	out := make([]*entity.Tratamiento, 0, len(r.items))
	for id := 1; id <= r.seq; id++ {
		if _, ok := r.items[id]; !ok {
			continue
		}
		t, _ := r.GetDetail(ctx, id)
		if t.Reproductora == nil && t.Semental == nil && t.LoteEngorde == nil {
			continue
		}
		out = append(out, t)
	}
	return paginar(out, skip, limit), nil
}

func (r *fakeTratamientoRepo) Update(_ context.Context, t *entity.Tratamiento) error {
	guardado := *t
	guardado.Reproductora, guardado.Semental, guardado.LoteEngorde = nil, nil, nil
	r.items[t.ID] = guardado
	return nil
}

func (r *fakeTratamientoRepo) Delete(_ context.Context, id int) error {
	delete(r.items, id)
	return nil
}

func paginar[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
