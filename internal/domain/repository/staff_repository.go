package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia para empleados.
type StaffRepository interface {
	Create(s *entity.Staff) error
	GetByPhoneOrEmail(identifier string) (*entity.Staff, error)
	Update(s *entity.Staff) error
	Delete(id int64) error
	List() ([]*entity.Staff, error)
}
