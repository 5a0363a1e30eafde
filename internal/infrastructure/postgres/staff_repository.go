package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = "id, name, position, phone, email, address, manager_id, salary, password_hash"

// Create persiste un empleado y escribe el ID asignado en la entidad.
func (r *StaffRepo) Create(s *entity.Staff) error {
	query := `
		INSERT INTO staff (name, position, phone, email, address, manager_id, salary, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.Name, s.Position, s.Phone, s.Email, s.Address, s.ManagerID, s.Salary, s.PasswordHash,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: teléfono o email de empleado", domain.ErrDuplicate)
		}
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

// GetByPhoneOrEmail busca un empleado cuyo teléfono o email coincida con el
// identificador. Retorna nil si no existe.
func (r *StaffRepo) GetByPhoneOrEmail(identifier string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE phone = $1 OR email = $1`
	var s entity.Staff
	err := r.q.QueryRow(context.Background(), query, identifier).Scan(
		&s.ID, &s.Name, &s.Position, &s.Phone, &s.Email, &s.Address,
		&s.ManagerID, &s.Salary, &s.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by phone or email: %w", err)
	}
	return &s, nil
}

// Update reescribe los datos del empleado.
func (r *StaffRepo) Update(s *entity.Staff) error {
	query := `
		UPDATE staff
		SET name = $1, position = $2, phone = $3, email = $4, address = $5,
		    manager_id = $6, salary = $7
		WHERE id = $8`
	tag, err := r.q.Exec(context.Background(), query,
		s.Name, s.Position, s.Phone, s.Email, s.Address, s.ManagerID, s.Salary, s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: teléfono o email de empleado", domain.ErrDuplicate)
		}
		return fmt.Errorf("update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, s.ID)
	}
	return nil
}

// Delete borra un empleado por ID.
func (r *StaffRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el empleado tiene pedidos asignados", domain.ErrConflict)
		}
		return fmt.Errorf("delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return nil
}

// List lista los empleados sin exponer el hash de contraseña.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	query := `SELECT id, name, position, phone, email, address, manager_id, salary FROM staff ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var out []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		err := rows.Scan(&s.ID, &s.Name, &s.Position, &s.Phone, &s.Email, &s.Address, &s.ManagerID, &s.Salary)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
