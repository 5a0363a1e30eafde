package usecase

import (
	"fmt"
	"strings"
)

// UsageCheck conteo de filas dependientes antes de permitir un borrado.
// Es una verificación de precondición de solo lectura; la llave foránea de la
// BD actúa de respaldo si algo se inserta entre el conteo y el delete.
type UsageCheck struct {
	Requests  int64
	Movements int64
	Supplies  int64
}

// CanDelete indica si no hay dependientes.
func (u UsageCheck) CanDelete() bool {
	return u.Requests == 0 && u.Movements == 0 && u.Supplies == 0
}

// Describe arma el detalle humano de los dependientes, p.ej.
// "3 líneas de pedido, 2 movimientos de stock".
func (u UsageCheck) Describe() string {
	var parts []string
	if u.Requests > 0 {
		parts = append(parts, fmt.Sprintf("%d líneas de pedido", u.Requests))
	}
	if u.Movements > 0 {
		parts = append(parts, fmt.Sprintf("%d movimientos de stock", u.Movements))
	}
	if u.Supplies > 0 {
		parts = append(parts, fmt.Sprintf("%d suministros", u.Supplies))
	}
	return strings.Join(parts, ", ")
}
