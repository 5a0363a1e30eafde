package usecase

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// StaffUseCase CRUD de empleados.
type StaffUseCase struct {
	staffRepo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(staffRepo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{staffRepo: staffRepo}
}

// List retorna todos los empleados (sin hash de contraseña).
func (uc *StaffUseCase) List() ([]*entity.Staff, error) {
	return uc.staffRepo.List()
}

// Create persiste un empleado nuevo y retorna su ID.
func (uc *StaffUseCase) Create(in dto.StaffRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s := staffFromRequest(in)
	if err := uc.staffRepo.Create(s); err != nil {
		return 0, err
	}
	return s.ID, nil
}

// Update sobrescribe un empleado existente.
func (uc *StaffUseCase) Update(id int64, in dto.StaffRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s := staffFromRequest(in)
	s.ID = id
	return uc.staffRepo.Update(s)
}

// Delete elimina un empleado.
func (uc *StaffUseCase) Delete(id int64) error {
	return uc.staffRepo.Delete(id)
}

func staffFromRequest(in dto.StaffRequest) *entity.Staff {
	return &entity.Staff{
		Name:      in.Name,
		Position:  in.Position,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		ManagerID: in.ManagerID,
		Salary:    in.Salary,
	}
}
