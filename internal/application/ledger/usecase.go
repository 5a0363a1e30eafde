package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase es el ledger de inventario: CRUD de registros de inventario y las
// operaciones compuestas (import, export, stocktaking, movimientos) que mutan
// el contador de stock y la tabla de movimientos de forma transaccional, con
// bloqueo de fila (SELECT FOR UPDATE) por registro de inventario.
type UseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository
	movRepo  repository.MovementRepository
}

// NewUseCase construye el ledger. invRepo y movRepo van atados al pool y solo
// se usan para lecturas; toda escritura pasa por txRunner.
func NewUseCase(txRunner TxRunner, invRepo repository.InventoryRepository, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, invRepo: invRepo, movRepo: movRepo}
}

// List retorna todos los registros de inventario con el producto vinculado por
// movimientos: una fila por pareja (inventario, producto) observada.
func (uc *UseCase) List(ctx context.Context) ([]*dto.InventoryRow, error) {
	rows, err := uc.invRepo.ListWithProducts()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.InventoryRow{
			ID:            r.ID,
			Warehouse:     r.Warehouse,
			MaxStockLevel: r.MaxStockLevel,
			StockQuantity: r.StockQuantity,
			UnitCost:      r.UnitCost,
			LastUpdated:   r.LastUpdated,
			Note:          r.Note,
			Status:        r.Status,
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			ProductLine:   r.ProductLine,
			ProductBrand:  r.ProductBrand,
		})
	}
	return out, nil
}

// Create crea un registro de inventario. Si viene ProductID, verifica que el
// producto exista (ErrReferenceNotFound si no) y registra atómicamente un
// movimiento Initial con delta igual al stock inicial.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	status := in.Status
	if status == "" {
		status = entity.InventoryStatusActive
	}
	now := time.Now()
	inv := &entity.Inventory{
		Warehouse:     in.Warehouse,
		MaxStockLevel: in.MaxStockLevel,
		StockQuantity: in.StockQuantity,
		UnitCost:      in.UnitCost,
		LastUpdated:   now,
		Note:          in.Note,
		Status:        status,
	}
	if in.ID != nil {
		inv.ID = *in.ID
	}

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if in.ProductID != nil {
			ok, err := productRepo.Exists(*in.ProductID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: producto %d", domain.ErrReferenceNotFound, *in.ProductID)
			}
		}
		if err := invRepo.Create(inv); err != nil {
			return err
		}
		if in.ProductID == nil {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			ProductID:   *in.ProductID,
			InventoryID: inv.ID,
			Date:        now,
			Quantity:    in.StockQuantity,
			Role:        entity.RoleInitial,
			Reference:   uuid.New().String(),
		})
	})
	if err != nil {
		return 0, err
	}
	return inv.ID, nil
}

// Update sobrescribe los atributos mutables del registro y actualiza
// LastUpdated. Con ProductID: si ya existe un movimiento vinculando la pareja
// (inventario, producto) se sobrescribe su delta al nuevo stock y se refresca
// su fecha; si no, se inserta un movimiento Update con ese delta.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateInventoryRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, id)
		}
		if in.ProductID != nil {
			ok, err := productRepo.Exists(*in.ProductID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: producto %d", domain.ErrReferenceNotFound, *in.ProductID)
			}
		}

		inv.Warehouse = in.Warehouse
		inv.MaxStockLevel = in.MaxStockLevel
		inv.StockQuantity = in.StockQuantity
		inv.UnitCost = in.UnitCost
		inv.Note = in.Note
		if in.Status != "" {
			inv.Status = in.Status
		}
		inv.LastUpdated = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if in.ProductID == nil {
			return nil
		}

		existing, err := movRepo.GetByInventoryAndProduct(id, *in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity = in.StockQuantity
			existing.Date = now
			return movRepo.Update(existing)
		}
		return movRepo.Create(&entity.StockMovement{
			ProductID:   *in.ProductID,
			InventoryID: id,
			Date:        now,
			Quantity:    in.StockQuantity,
			Role:        entity.RoleUpdate,
			Reference:   uuid.New().String(),
		})
	})
}

// Delete elimina un registro de inventario solo si ningún movimiento lo
// referencia. El conteo se hace dentro de la misma transacción que el borrado
// para cerrar la ventana entre verificación y eliminación.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, id)
		}
		count, err := movRepo.CountByInventory(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: la bodega está en uso por %d movimientos de stock", domain.ErrConflict, count)
		}
		return invRepo.Delete(id)
	})
}
