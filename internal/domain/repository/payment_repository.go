package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	Update(p *entity.Payment) error
	Delete(id int64) error
	ListAll() ([]*entity.Payment, error)
}
