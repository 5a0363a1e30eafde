package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos con borrado protegido por uso.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	requestRepo  repository.RequestRepository
	movementRepo repository.MovementRepository
	supplyRepo   repository.SupplyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	requestRepo repository.RequestRepository,
	movementRepo repository.MovementRepository,
	supplyRepo repository.SupplyRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		requestRepo:  requestRepo,
		movementRepo: movementRepo,
		supplyRepo:   supplyRepo,
	}
}

// List retorna productos, con búsqueda libre y filtro por línea opcionales.
func (uc *ProductUseCase) List(search, category string) ([]*entity.Product, error) {
	return uc.productRepo.List(search, category)
}

// Get retorna un producto o ErrNotFound.
func (uc *ProductUseCase) Get(id int64) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return p, nil
}

// Create persiste un producto nuevo y retorna su ID.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := productFromRequest(in)
	if err := uc.productRepo.Create(p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Update sobrescribe un producto existente.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := productFromRequest(in)
	p.ID = id
	return uc.productRepo.Update(p)
}

// Usage cuenta dependientes del producto en líneas de pedido, movimientos y suministros.
func (uc *ProductUseCase) Usage(id int64) (UsageCheck, error) {
	var u UsageCheck
	var err error
	if u.Requests, err = uc.requestRepo.CountByProduct(id); err != nil {
		return u, err
	}
	if u.Movements, err = uc.movementRepo.CountByProduct(id); err != nil {
		return u, err
	}
	if u.Supplies, err = uc.supplyRepo.CountByProduct(id); err != nil {
		return u, err
	}
	return u, nil
}

// Delete elimina un producto si nada lo referencia; si no, ErrConflict con el
// detalle de dependientes.
func (uc *ProductUseCase) Delete(id int64) error {
	u, err := uc.Usage(id)
	if err != nil {
		return err
	}
	if !u.CanDelete() {
		return fmt.Errorf("%w: el producto está en uso por: %s", domain.ErrConflict, u.Describe())
	}
	return uc.productRepo.Delete(id)
}

// InventoryView retorna los inventarios de un producto según sus movimientos.
func (uc *ProductUseCase) InventoryView(id int64) ([]*entity.ProductInventoryView, error) {
	return uc.productRepo.InventoryView(id)
}

// Suppliers retorna los proveedores que han suministrado el producto.
func (uc *ProductUseCase) Suppliers(id int64) ([]*entity.SupplyWithDetails, error) {
	return uc.supplyRepo.ListByProduct(id)
}

// Categories retorna las líneas de producto distintas.
func (uc *ProductUseCase) Categories() ([]*entity.Category, error) {
	return uc.productRepo.ListCategories()
}

// CategoriesWithCount retorna líneas de producto con su número de productos.
func (uc *ProductUseCase) CategoriesWithCount() ([]*entity.Category, error) {
	return uc.productRepo.CategoriesWithCount()
}

func productFromRequest(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		Name:           in.Name,
		PriceEach:      in.PriceEach,
		Line:           in.Line,
		Scale:          in.Scale,
		Brand:          in.Brand,
		Description:    in.Description,
		WarrantyPeriod: in.WarrantyPeriod,
		MSRP:           in.MSRP,
	}
}
