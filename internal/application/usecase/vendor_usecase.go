package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// VendorUseCase CRUD de proveedores con borrado protegido por uso en supplies.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
	supplyRepo repository.SupplyRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendorRepo repository.VendorRepository, supplyRepo repository.SupplyRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, supplyRepo: supplyRepo}
}

// List retorna proveedores con el número de productos distintos que suministran.
func (uc *VendorUseCase) List() ([]*entity.VendorWithCount, error) {
	return uc.vendorRepo.ListWithProductCount()
}

// Create persiste un proveedor nuevo y retorna su ID.
func (uc *VendorUseCase) Create(in dto.VendorRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	v := &entity.Vendor{
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}
	if err := uc.vendorRepo.Create(v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

// Update sobrescribe un proveedor existente.
func (uc *VendorUseCase) Update(id int64, in dto.VendorRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.vendorRepo.Update(&entity.Vendor{
		ID:          id,
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	})
}

// Delete elimina un proveedor si ningún suministro lo referencia.
func (uc *VendorUseCase) Delete(id int64) error {
	count, err := uc.supplyRepo.CountByVendor(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: el proveedor está en uso por %d suministros", domain.ErrConflict, count)
	}
	return uc.vendorRepo.Delete(id)
}
