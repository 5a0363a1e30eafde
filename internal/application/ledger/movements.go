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

// Ruta manual de movimientos. Regla uniforme: todo movimiento con delta
// distinto de cero ajusta el stock del inventario en ese delta, sin importar
// el rol; el rol queda como metadato de auditoría. El ajuste nunca puede dejar
// el stock negativo.

// CreateMovement valida ambas llaves foráneas, inserta el movimiento y aplica
// su delta al registro de inventario bloqueado.
func (uc *UseCase) CreateMovement(ctx context.Context, in dto.MovementRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleManual
	}
	if !entity.ValidRole(role) {
		return 0, fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, in.Role)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	mov := &entity.StockMovement{
		ProductID:   in.ProductID,
		InventoryID: in.InventoryID,
		Date:        date,
		Quantity:    in.Quantity,
		Role:        role,
		Reference:   uuid.New().String(),
	}
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		ok, err := productRepo.Exists(in.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
		}
		inv, err := invRepo.GetForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, in.InventoryID)
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return applyDelta(invRepo, inv, in.Quantity, date)
	})
	if err != nil {
		return 0, err
	}
	return mov.ID, nil
}

// UpdateMovement reescribe un movimiento y reconcilia el stock. Dentro del
// mismo inventario se aplica la diferencia entre la cantidad nueva y la
// anterior; si el movimiento cambia de inventario, el delta anterior se
// revierte completo en el origen y el nuevo se aplica completo en el destino,
// de modo que la suma de deltas por inventario siga cuadrando con su stock.
func (uc *UseCase) UpdateMovement(ctx context.Context, id int64, in dto.MovementRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleManual
	}
	if !entity.ValidRole(role) {
		return fmt.Errorf("%w: rol %q desconocido", domain.ErrInvalidInput, in.Role)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		old, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
		}
		ok, err := productRepo.Exists(in.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
		}
		srcInv, dstInv, err := lockMovementPair(invRepo, old.InventoryID, in.InventoryID)
		if err != nil {
			return err
		}
		if dstInv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, in.InventoryID)
		}

		prevQty, prevInvID := old.Quantity, old.InventoryID
		old.ProductID = in.ProductID
		old.InventoryID = in.InventoryID
		old.Date = date
		old.Quantity = in.Quantity
		old.Role = role
		if err := movRepo.Update(old); err != nil {
			return err
		}
		if prevInvID == in.InventoryID {
			return applyDelta(invRepo, dstInv, in.Quantity-prevQty, date)
		}
		if srcInv != nil {
			if err := applyDelta(invRepo, srcInv, -prevQty, date); err != nil {
				return err
			}
		}
		return applyDelta(invRepo, dstInv, in.Quantity, date)
	})
}

// lockMovementPair bloquea el inventario de origen y el de destino de un
// movimiento. Con IDs distintos bloquea en orden ascendente para que dos
// updates cruzados no se interbloqueen; con el mismo ID bloquea una sola vez
// y retorna el mismo registro en ambas posiciones.
func lockMovementPair(invRepo repository.InventoryRepository, srcID, dstID int64) (*entity.Inventory, *entity.Inventory, error) {
	if srcID == dstID {
		inv, err := invRepo.GetForUpdate(dstID)
		return inv, inv, err
	}
	first, second := srcID, dstID
	if first > second {
		first, second = second, first
	}
	a, err := invRepo.GetForUpdate(first)
	if err != nil {
		return nil, nil, err
	}
	b, err := invRepo.GetForUpdate(second)
	if err != nil {
		return nil, nil, err
	}
	if first == srcID {
		return a, b, nil
	}
	return b, a, nil
}

// DeleteMovement elimina un movimiento y revierte su delta contra el registro
// de inventario, de modo que la suma de movimientos siga cuadrando con el stock.
func (uc *UseCase) DeleteMovement(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
		}
		inv, err := invRepo.GetForUpdate(mov.InventoryID)
		if err != nil {
			return err
		}
		if err := movRepo.Delete(id); err != nil {
			return err
		}
		if inv == nil {
			return nil
		}
		return applyDelta(invRepo, inv, -mov.Quantity, time.Now())
	})
}

// ListMovements retorna todos los movimientos con producto y bodega vinculados.
func (uc *UseCase) ListMovements(ctx context.Context) ([]*dto.MovementRow, error) {
	rows, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toMovementRows(rows), nil
}

// MovementsByProduct retorna los movimientos de un producto.
func (uc *UseCase) MovementsByProduct(ctx context.Context, productID int64) ([]*dto.MovementRow, error) {
	rows, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementRows(rows), nil
}

// MovementsByInventory retorna los movimientos de un registro de inventario.
func (uc *UseCase) MovementsByInventory(ctx context.Context, inventoryID int64) ([]*dto.MovementRow, error) {
	rows, err := uc.movRepo.ListByInventory(inventoryID)
	if err != nil {
		return nil, err
	}
	return toMovementRows(rows), nil
}

// applyDelta ajusta el stock del inventario bloqueado en delta, preservando la
// invariante de no-negatividad.
func applyDelta(invRepo repository.InventoryRepository, inv *entity.Inventory, delta int64, date time.Time) error {
	if delta == 0 {
		return nil
	}
	newQty := inv.StockQuantity + delta
	if newQty < 0 {
		return fmt.Errorf("%w: el ajuste de %d dejaría el stock en %d", domain.ErrInsufficientStock, delta, newQty)
	}
	inv.StockQuantity = newQty
	inv.LastUpdated = date
	return invRepo.Update(inv)
}

func toMovementRows(rows []*entity.MovementWithDetails) []*dto.MovementRow {
	out := make([]*dto.MovementRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.MovementRow{
			ID:             r.ID,
			ProductID:      r.ProductID,
			InventoryID:    r.InventoryID,
			Date:           r.Date,
			Quantity:       r.Quantity,
			Role:           r.Role,
			Reference:      r.Reference,
			ProductName:    r.ProductName,
			ProductLine:    r.ProductLine,
			ProductBrand:   r.ProductBrand,
			Warehouse:      r.Warehouse,
			InventoryStock: r.InventoryStock,
		})
	}
	return out
}
