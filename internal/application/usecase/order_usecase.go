package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta el checkout dentro de una transacción: pedido,
// líneas y pago pendiente se insertan juntos o ninguno.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		requestRepo repository.RequestRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// Métodos de pago en línea que generan un pago pendiente en checkout.
var onlinePaymentMethods = map[string]bool{
	"BankTransfer": true,
	"Voucher":      true,
}

// OrderUseCase CRUD de pedidos, líneas de pedido y el flujo de checkout.
type OrderUseCase struct {
	txRunner    CheckoutTxRunner
	orderRepo   repository.OrderRepository
	requestRepo repository.RequestRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner CheckoutTxRunner, orderRepo repository.OrderRepository, requestRepo repository.RequestRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, requestRepo: requestRepo}
}

// List retorna pedidos con filtros opcionales.
func (uc *OrderUseCase) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	return uc.orderRepo.List(filter)
}

// ListByCustomer retorna los pedidos de un cliente.
func (uc *OrderUseCase) ListByCustomer(customerID int64) ([]*entity.Order, error) {
	return uc.orderRepo.ListByCustomer(customerID)
}

// Create persiste un pedido nuevo y retorna su ID.
func (uc *OrderUseCase) Create(in dto.OrderRequestBody) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	o := orderFromRequest(in)
	if err := uc.orderRepo.Create(o); err != nil {
		return 0, err
	}
	return o.ID, nil
}

// Update sobrescribe un pedido existente.
func (uc *OrderUseCase) Update(id int64, in dto.OrderRequestBody) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	o := orderFromRequest(in)
	o.ID = id
	return uc.orderRepo.Update(o)
}

// Delete elimina un pedido.
func (uc *OrderUseCase) Delete(id int64) error {
	return uc.orderRepo.Delete(id)
}

// Checkout inserta en una sola transacción el pedido (estado Pending), una
// línea por producto del carrito y, si el método de pago es en línea, el pago
// pendiente por el total. Retorna el ID del pedido.
func (uc *OrderUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (int64, error) {
	if err := dto.Validate(&in); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	total := decimal.Zero
	for _, p := range in.Products {
		total = total.Add(p.PriceEach.Mul(decimal.NewFromInt(p.Quantity)))
	}
	now := time.Now()
	order := &entity.Order{
		TotalAmount:   total,
		OrderDate:     now,
		OrderStatus:   entity.OrderStatusPending,
		PaymentStatus: in.PaymentStatus,
		PickupMethod:  in.PickupMethod,
		ShippedDate:   in.ShippedDate,
		ShippedStatus: in.ShippedStatus,
		CustomerID:    in.CustomerID,
		StaffID:       in.StaffID,
	}

	err := uc.txRunner.RunCheckout(ctx, func(
		orderRepo repository.OrderRepository,
		requestRepo repository.RequestRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, p := range in.Products {
			if err := requestRepo.Create(&entity.OrderRequest{
				OrderID:         order.ID,
				ProductID:       p.ProductID,
				QuantityOrdered: p.Quantity,
				Discount:        decimal.Zero,
			}); err != nil {
				return err
			}
		}
		if !onlinePaymentMethods[in.PaymentMethod] {
			return nil
		}
		return paymentRepo.Create(&entity.Payment{
			OrderID:           order.ID,
			TransactionAmount: total,
			PaymentMethod:     in.PaymentMethod,
			TransactionDate:   now,
			TransactionStatus: entity.PaymentStatusPending,
		})
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// Lines retorna todas las líneas de pedido.
func (uc *OrderUseCase) Lines() ([]*entity.OrderRequest, error) {
	return uc.requestRepo.ListAll()
}

// LinesByOrder retorna las líneas de un pedido.
func (uc *OrderUseCase) LinesByOrder(orderID int64) ([]*entity.OrderRequest, error) {
	return uc.requestRepo.ListByOrder(orderID)
}

// CreateLine inserta una línea de pedido.
func (uc *OrderUseCase) CreateLine(in dto.LineRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.requestRepo.Create(&entity.OrderRequest{
		OrderID:         in.OrderID,
		ProductID:       in.ProductID,
		QuantityOrdered: in.QuantityOrdered,
		Discount:        in.Discount,
		Note:            in.Note,
	})
}

// UpdateLine sobrescribe una línea de pedido.
func (uc *OrderUseCase) UpdateLine(id int64, in dto.LineRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return uc.requestRepo.Update(&entity.OrderRequest{
		ID:              id,
		OrderID:         in.OrderID,
		ProductID:       in.ProductID,
		QuantityOrdered: in.QuantityOrdered,
		Discount:        in.Discount,
		Note:            in.Note,
	})
}

// DeleteLine elimina una línea de pedido.
func (uc *OrderUseCase) DeleteLine(id int64) error {
	return uc.requestRepo.Delete(id)
}

func orderFromRequest(in dto.OrderRequestBody) *entity.Order {
	return &entity.Order{
		TotalAmount:   in.TotalAmount,
		OrderStatus:   in.OrderStatus,
		PaymentStatus: in.PaymentStatus,
		PickupMethod:  in.PickupMethod,
		ShippedDate:   in.ShippedDate,
		ShippedStatus: in.ShippedStatus,
		CustomerID:    in.CustomerID,
		StaffID:       in.StaffID,
	}
}
