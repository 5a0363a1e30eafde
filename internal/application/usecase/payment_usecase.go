package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// PaymentUseCase CRUD de pagos.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo}
}

// List retorna todos los pagos.
func (uc *PaymentUseCase) List() ([]*entity.Payment, error) {
	return uc.paymentRepo.ListAll()
}

// Create inserta un pago con fecha de transacción actual.
func (uc *PaymentUseCase) Create(in dto.PaymentRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := paymentFromRequest(in)
	if err := uc.paymentRepo.Create(p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Update sobrescribe un pago y refresca su fecha de transacción.
func (uc *PaymentUseCase) Update(id int64, in dto.PaymentRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p := paymentFromRequest(in)
	p.ID = id
	return uc.paymentRepo.Update(p)
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(id int64) error {
	return uc.paymentRepo.Delete(id)
}

func paymentFromRequest(in dto.PaymentRequest) *entity.Payment {
	return &entity.Payment{
		OrderID:           in.OrderID,
		TransactionAmount: in.TransactionAmount,
		PaymentMethod:     in.PaymentMethod,
		TransactionDate:   time.Now(),
		TransactionStatus: in.TransactionStatus,
	}
}
