package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes de Querier
// ─────────────────────────────────────────────────────────────────────────────

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// seqQuerier simula la secuencia de la tabla: los primeros `colisiones`
// INSERT ... RETURNING chocan con IDs ya ocupados (23505) y los siguientes
// asignan un ID libre.
type seqQuerier struct {
	colisiones int
	intentos   int
	nextID     int64
	execErr    error
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "inventories_pkey"}
}

func (q *seqQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.execErr
}

func (q *seqQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (q *seqQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.intentos++
	if q.intentos <= q.colisiones {
		return fakeRow{scan: func(dest ...any) error { return uniqueViolation() }}
	}
	q.nextID++
	id := q.nextID
	return fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = id
		return nil
	}}
}

func nuevoRegistro() *entity.Inventory {
	return &entity.Inventory{
		Warehouse:     "bodega central",
		MaxStockLevel: 100,
		StockQuantity: 10,
		UnitCost:      decimal.NewFromFloat(4.50),
		LastUpdated:   time.Now(),
		Status:        entity.InventoryStatusActive,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create con ID autoasignado
// ─────────────────────────────────────────────────────────────────────────────

// Caso 1: la secuencia alcanza un ID insertado explícitamente y el INSERT
// choca; el reintento avanza la secuencia y termina asignando un ID libre.
func TestInventoryCreate_SecuenciaChocaConIDExplicito(t *testing.T) {
	q := &seqQuerier{colisiones: 2, nextID: 7}
	repo := postgres.NewInventoryRepository(q)

	inv := nuevoRegistro()
	err := repo.Create(inv)

	require.NoError(t, err)
	assert.Equal(t, int64(8), inv.ID, "el ID asignado debe ser el primero libre")
	assert.Equal(t, 3, q.intentos, "dos colisiones más el intento que prospera")
}

// Caso 2: si todos los reintentos chocan se devuelve el error de la DB.
func TestInventoryCreate_ReintentosAgotados(t *testing.T) {
	q := &seqQuerier{colisiones: 100}
	repo := postgres.NewInventoryRepository(q)

	err := repo.Create(nuevoRegistro())

	require.Error(t, err)
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, 3, q.intentos, "no debe reintentar indefinidamente")
}

// Caso 3: un error distinto de 23505 no se reintenta.
func TestInventoryCreate_ErrorNoUnicoNoReintenta(t *testing.T) {
	caida := errors.New("connection reset")
	llamadas := 0
	repo := postgres.NewInventoryRepository(querierFunc(func(ctx context.Context, sql string, args ...any) pgx.Row {
		llamadas++
		return fakeRow{scan: func(dest ...any) error { return caida }}
	}))

	err := repo.Create(nuevoRegistro())

	require.Error(t, err)
	assert.ErrorIs(t, err, caida)
	assert.Equal(t, 1, llamadas, "un error genérico no debe reintentarse")
}

// querierFunc adapta una función QueryRow a la interfaz Querier.
type querierFunc func(ctx context.Context, sql string, args ...any) pgx.Row

func (f querierFunc) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f querierFunc) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (f querierFunc) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f(ctx, sql, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Create con ID explícito
// ─────────────────────────────────────────────────────────────────────────────

// Caso 4: un ID explícito ya ocupado se reporta como duplicado del dominio.
func TestInventoryCreate_IDExplicitoDuplicado(t *testing.T) {
	q := &seqQuerier{execErr: uniqueViolation()}
	repo := postgres.NewInventoryRepository(q)

	inv := nuevoRegistro()
	inv.ID = 15
	err := repo.Create(inv)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "inventario 15")
	assert.Zero(t, q.intentos, "el INSERT con ID explícito no pasa por la secuencia")
}
