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

// Import registra una entrada de stock: inserta un movimiento Import con delta
// positivo y suma la cantidad al registro de inventario. Si el registro no
// existe, lo crea implícitamente con la bodega por defecto y estado Active.
// Todo dentro de una transacción; la fila de inventario se bloquea primero.
func (uc *UseCase) Import(ctx context.Context, in dto.ImportRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	ref := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			// El registro se crea antes que el movimiento para que la FK
			// inventory_id del movimiento resuelva dentro de la misma tx.
			if err := invRepo.Create(&entity.Inventory{
				ID:            in.InventoryID,
				Warehouse:     entity.DefaultWarehouse,
				StockQuantity: in.Quantity,
				UnitCost:      in.UnitCost,
				LastUpdated:   date,
				Status:        entity.InventoryStatusActive,
			}); err != nil {
				return err
			}
			return movRepo.Create(&entity.StockMovement{
				ProductID:   in.ProductID,
				InventoryID: in.InventoryID,
				Date:        date,
				Quantity:    in.Quantity,
				Role:        entity.RoleImport,
				Reference:   ref,
			})
		}
		if err := movRepo.Create(&entity.StockMovement{
			ProductID:   in.ProductID,
			InventoryID: in.InventoryID,
			Date:        date,
			Quantity:    in.Quantity,
			Role:        entity.RoleImport,
			Reference:   ref,
		}); err != nil {
			return err
		}
		inv.StockQuantity += in.Quantity
		inv.UnitCost = in.UnitCost
		inv.LastUpdated = date
		return invRepo.Update(inv)
	})
}

// Export registra una salida de stock. La verificación de suficiencia y la
// resta se ejecutan con la fila bloqueada, de modo que dos exports concurrentes
// sobre el mismo inventario se serializan y el stock nunca queda negativo.
func (uc *UseCase) Export(ctx context.Context, in dto.ExportRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	ref := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil || inv.StockQuantity < in.Quantity {
			available := int64(0)
			if inv != nil {
				available = inv.StockQuantity
			}
			return fmt.Errorf("%w: solicitado %d, disponible %d", domain.ErrInsufficientStock, in.Quantity, available)
		}
		if err := movRepo.Create(&entity.StockMovement{
			ProductID:   in.ProductID,
			InventoryID: in.InventoryID,
			Date:        date,
			Quantity:    -in.Quantity,
			Role:        entity.RoleExport,
			Reference:   ref,
		}); err != nil {
			return err
		}
		inv.StockQuantity -= in.Quantity
		inv.LastUpdated = date
		return invRepo.Update(inv)
	})
}

// Stocktaking fija el stock al conteo físico (reset autoritativo, no un delta)
// y registra la diferencia como movimiento Stocktaking. Si el conteo coincide
// con el stock actual no se escribe fila de auditoría.
func (uc *UseCase) Stocktaking(ctx context.Context, in dto.StocktakingRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
	) error {
		inv, err := invRepo.GetForUpdate(in.InventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, in.InventoryID)
		}
		difference := in.ActualQuantity - inv.StockQuantity

		inv.StockQuantity = in.ActualQuantity
		inv.LastUpdated = date
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		if difference == 0 {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			ProductID:   in.ProductID,
			InventoryID: in.InventoryID,
			Date:        date,
			Quantity:    difference,
			Role:        entity.RoleStocktaking,
			Reference:   uuid.New().String(),
		})
	})
}
