package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// OrderFilter filtros opcionales del listado de pedidos.
type OrderFilter struct {
	Search     string
	Status     string
	CustomerID int64
}

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(o *entity.Order) error
	Update(o *entity.Order) error
	Delete(id int64) error
	List(filter OrderFilter) ([]*entity.Order, error)
	ListByCustomer(customerID int64) ([]*entity.Order, error)
}

// RequestRepository define el puerto de persistencia para líneas de pedido.
type RequestRepository interface {
	Create(r *entity.OrderRequest) error
	Update(r *entity.OrderRequest) error
	Delete(id int64) error
	ListAll() ([]*entity.OrderRequest, error)
	ListByOrder(orderID int64) ([]*entity.OrderRequest, error)
	CountByProduct(productID int64) (int64, error)
}
