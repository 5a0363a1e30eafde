package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes y consultas de deudas.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// List retorna clientes; search busca en nombre, teléfono y email.
func (uc *CustomerUseCase) List(search string) ([]*entity.Customer, error) {
	return uc.customerRepo.List(search)
}

// Get retorna un cliente o ErrNotFound.
func (uc *CustomerUseCase) Get(id int64) (*entity.Customer, error) {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	return c, nil
}

// Create persiste un cliente nuevo y retorna su ID.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	c := &entity.Customer{
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
	}
	if err := uc.customerRepo.Create(c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// Update sobrescribe los datos de contacto de un cliente.
func (uc *CustomerUseCase) Update(id int64, in dto.CustomerRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.customerRepo.Update(&entity.Customer{
		ID:         id,
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
	})
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(id int64) error {
	return uc.customerRepo.Delete(id)
}

// Debts retorna los pedidos con saldo pendiente de un cliente.
func (uc *CustomerUseCase) Debts(id int64) ([]*entity.CustomerDebt, error) {
	return uc.customerRepo.Debts(id)
}

// AllDebts retorna la deuda total acumulada por cliente.
func (uc *CustomerUseCase) AllDebts() ([]*entity.DebtSummary, error) {
	return uc.customerRepo.AllDebts()
}
