package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SupplyUseCase relación producto-proveedor: validación de llaves foráneas y CRUD.
type SupplyUseCase struct {
	supplyRepo  repository.SupplyRepository
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(
	supplyRepo repository.SupplyRepository,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
) *SupplyUseCase {
	return &SupplyUseCase{supplyRepo: supplyRepo, productRepo: productRepo, vendorRepo: vendorRepo}
}

// ListAll retorna todos los suministros con producto y proveedor vinculados.
func (uc *SupplyUseCase) ListAll() ([]*entity.SupplyWithDetails, error) {
	return uc.supplyRepo.ListAll()
}

// ListByProduct retorna los suministros de un producto.
func (uc *SupplyUseCase) ListByProduct(productID int64) ([]*entity.SupplyWithDetails, error) {
	return uc.supplyRepo.ListByProduct(productID)
}

// ListByVendor retorna los suministros de un proveedor.
func (uc *SupplyUseCase) ListByVendor(vendorID int64) ([]*entity.SupplyWithDetails, error) {
	return uc.supplyRepo.ListByVendor(vendorID)
}

// Create valida que producto y proveedor existan e inserta el suministro.
func (uc *SupplyUseCase) Create(in dto.SupplyRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.checkRefs(in); err != nil {
		return 0, err
	}
	s := supplyFromRequest(in)
	if err := uc.supplyRepo.Create(s); err != nil {
		return 0, err
	}
	return s.ID, nil
}

// Update valida las llaves foráneas y sobrescribe el suministro.
func (uc *SupplyUseCase) Update(id int64, in dto.SupplyRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.checkRefs(in); err != nil {
		return err
	}
	s := supplyFromRequest(in)
	s.ID = id
	return uc.supplyRepo.Update(s)
}

// Delete elimina un suministro.
func (uc *SupplyUseCase) Delete(id int64) error {
	return uc.supplyRepo.Delete(id)
}

func (uc *SupplyUseCase) checkRefs(in dto.SupplyRequest) error {
	ok, err := uc.productRepo.Exists(in.ProductID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
	}
	ok, err = uc.vendorRepo.Exists(in.VendorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, in.VendorID)
	}
	return nil
}

func supplyFromRequest(in dto.SupplyRequest) *entity.Supply {
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	return &entity.Supply{
		ProductID: in.ProductID,
		VendorID:  in.VendorID,
		Date:      date,
		Quantity:  in.Quantity,
		HandledBy: in.HandledBy,
	}
}
