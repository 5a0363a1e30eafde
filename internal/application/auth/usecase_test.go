package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	if c, ok := r.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByPhoneOrEmail(identifier string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == identifier || (c.Email != "" && c.Email == identifier) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(id int64) error           { return nil }

func (r *fakeCustomerRepo) List(search string) ([]*entity.Customer, error) { return nil, nil }

func (r *fakeCustomerRepo) Debts(customerID int64) ([]*entity.CustomerDebt, error) { return nil, nil }
func (r *fakeCustomerRepo) AllDebts() ([]*entity.DebtSummary, error)               { return nil, nil }

type fakeStaffRepo struct {
	staffs map[int64]*entity.Staff
	nextID int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staffs: make(map[int64]*entity.Staff)}
}

func (r *fakeStaffRepo) Create(s *entity.Staff) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.staffs[s.ID] = &cp
	return nil
}

func (r *fakeStaffRepo) GetByPhoneOrEmail(identifier string) (*entity.Staff, error) {
	for _, s := range r.staffs {
		if s.Phone == identifier || (s.Email != "" && s.Email == identifier) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) Update(s *entity.Staff) error   { return nil }
func (r *fakeStaffRepo) Delete(id int64) error          { return nil }
func (r *fakeStaffRepo) List() ([]*entity.Staff, error) { return nil, nil }

const testSecret = "auth-usecase-test-secret"

func newAuthEnv() (*auth.UseCase, *fakeCustomerRepo, *fakeStaffRepo) {
	customers := newFakeCustomerRepo()
	staffs := newFakeStaffRepo()
	uc := auth.NewUseCase(customers, staffs, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
	return uc, customers, staffs
}

func registerCustomer(t *testing.T, uc *auth.UseCase) dto.RegisterCustomerRequest {
	t.Helper()
	in := dto.RegisterCustomerRequest{
		Name:     "María Gómez",
		Phone:    "3001234567",
		Email:    "maria@example.com",
		Password: "secreta123",
	}
	require.NoError(t, uc.RegisterCustomer(in))
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el registro persiste el hash bcrypt, nunca la contraseña plana.
func TestRegisterCustomer_HasheaPassword(t *testing.T) {
	uc, customers, _ := newAuthEnv()
	in := registerCustomer(t, uc)

	stored, err := customers.GetByPhoneOrEmail(in.Phone)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, in.Password, stored.PasswordHash, "la contraseña plana no debe persistirse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(in.Password)),
		"el hash almacenado debe verificar contra la contraseña original")
}

// Caso 2: teléfono o email ya registrado → ErrDuplicate.
func TestRegisterCustomer_Duplicado(t *testing.T) {
	uc, _, _ := newAuthEnv()
	in := registerCustomer(t, uc)

	err := uc.RegisterCustomer(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo email con otro teléfono también cuenta como duplicado.
	in.Phone = "3009999999"
	err = uc.RegisterCustomer(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Caso 3: contraseña demasiado corta no pasa la validación.
func TestRegisterCustomer_PasswordCorta_Retorna_ErrInvalidInput(t *testing.T) {
	uc, _, _ := newAuthEnv()
	err := uc.RegisterCustomer(dto.RegisterCustomerRequest{
		Name:     "María Gómez",
		Phone:    "3001234567",
		Password: "abc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterStaff_Duplicado(t *testing.T) {
	uc, _, _ := newAuthEnv()
	in := dto.RegisterStaffRequest{
		Name:     "Carlos Ruiz",
		Phone:    "3017654321",
		Password: "secreta123",
	}
	require.NoError(t, uc.RegisterStaff(in))

	err := uc.RegisterStaff(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: login por teléfono → token con user_type customer y sin hash expuesto.
func TestLoginCustomer_OK(t *testing.T) {
	uc, _, _ := newAuthEnv()
	in := registerCustomer(t, uc)

	resp, err := uc.LoginCustomer(dto.LoginRequest{Identifier: in.Phone, Password: in.Password})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Login successful", resp.Message)

	userID, userType, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "el token emitido debe parsear con el mismo secret")
	assert.Equal(t, auth.UserTypeCustomer, userType)

	user, ok := resp.User.(*entity.Customer)
	require.True(t, ok, "el user de la respuesta debe ser el cliente")
	assert.Equal(t, user.ID, userID, "el claim user_id debe coincidir con el cliente autenticado")
	assert.Empty(t, user.PasswordHash, "el hash nunca viaja en la respuesta")
}

// Caso 1b: el identificador también acepta el email.
func TestLoginCustomer_PorEmail(t *testing.T) {
	uc, _, _ := newAuthEnv()
	in := registerCustomer(t, uc)

	resp, err := uc.LoginCustomer(dto.LoginRequest{Identifier: in.Email, Password: in.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Caso 2: contraseña incorrecta → ErrUnauthorized, sin distinguir del usuario
// inexistente.
func TestLoginCustomer_PasswordIncorrecta(t *testing.T) {
	uc, _, _ := newAuthEnv()
	in := registerCustomer(t, uc)

	_, err := uc.LoginCustomer(dto.LoginRequest{Identifier: in.Phone, Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 3: usuario inexistente → ErrUnauthorized.
func TestLoginCustomer_NoExiste(t *testing.T) {
	uc, _, _ := newAuthEnv()

	_, err := uc.LoginCustomer(dto.LoginRequest{Identifier: "3000000000", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 4: login de empleado emite un token con user_type staff.
func TestLoginStaff_OK(t *testing.T) {
	uc, _, _ := newAuthEnv()
	require.NoError(t, uc.RegisterStaff(dto.RegisterStaffRequest{
		Name:     "Carlos Ruiz",
		Phone:    "3017654321",
		Password: "secreta123",
	}))

	resp, err := uc.LoginStaff(dto.LoginRequest{Identifier: "3017654321", Password: "secreta123"})
	require.NoError(t, err)

	_, userType, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.UserTypeStaff, userType)
}
