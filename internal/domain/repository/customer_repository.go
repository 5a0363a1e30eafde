package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	// GetByPhoneOrEmail usado por auth para registro (duplicados) y login.
	GetByPhoneOrEmail(identifier string) (*entity.Customer, error)
	Update(c *entity.Customer) error
	Delete(id int64) error
	List(search string) ([]*entity.Customer, error)
	Debts(customerID int64) ([]*entity.CustomerDebt, error)
	AllDebts() ([]*entity.DebtSummary, error)
}
