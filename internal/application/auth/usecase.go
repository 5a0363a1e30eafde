package auth

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Tipos de usuario que viajan en el claim del token.
const (
	UserTypeCustomer = "customer"
	UserTypeStaff    = "staff"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase registro y login de clientes y empleados: hash bcrypt + JWT.
type UseCase struct {
	customerRepo repository.CustomerRepository
	staffRepo    repository.StaffRepository
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(customerRepo repository.CustomerRepository, staffRepo repository.StaffRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{customerRepo: customerRepo, staffRepo: staffRepo, jwtCfg: jwtCfg}
}

// RegisterCustomer crea un cliente con contraseña hasheada. ErrDuplicate si el
// teléfono o el email ya están registrados.
func (uc *UseCase) RegisterCustomer(in dto.RegisterCustomerRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if existing, err := uc.lookupCustomer(in.Phone, in.Email); err != nil {
		return err
	} else if existing != nil {
		return fmt.Errorf("%w: teléfono o email ya registrado", domain.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.customerRepo.Create(&entity.Customer{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		PostalCode:   in.PostalCode,
		Type:         in.Type,
		LoyalPoint:   in.LoyalPoint,
		LoyalLevel:   in.LoyalLevel,
		PasswordHash: string(hash),
	})
}

// RegisterStaff crea un empleado con contraseña hasheada. ErrDuplicate si el
// teléfono o el email ya están registrados.
func (uc *UseCase) RegisterStaff(in dto.RegisterStaffRequest) error {
	if err := dto.Validate(&in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if existing, err := uc.lookupStaff(in.Phone, in.Email); err != nil {
		return err
	} else if existing != nil {
		return fmt.Errorf("%w: teléfono o email ya registrado", domain.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.staffRepo.Create(&entity.Staff{
		Name:         in.Name,
		Position:     in.Position,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		ManagerID:    in.ManagerID,
		Salary:       in.Salary,
		PasswordHash: string(hash),
	})
}

// LoginCustomer verifica identificador (email o teléfono) y contraseña, y
// retorna un JWT con los datos públicos del cliente.
func (uc *UseCase) LoginCustomer(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	c, err := uc.customerRepo.GetByPhoneOrEmail(in.Identifier)
	if err != nil {
		return nil, err
	}
	if c == nil || bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, c.ID, UserTypeCustomer, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	c.PasswordHash = ""
	return &dto.LoginResponse{Message: "Login successful", Token: token, User: c}, nil
}

// LoginStaff verifica identificador y contraseña de un empleado y retorna su JWT.
func (uc *UseCase) LoginStaff(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s, err := uc.staffRepo.GetByPhoneOrEmail(in.Identifier)
	if err != nil {
		return nil, err
	}
	if s == nil || bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, UserTypeStaff, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	s.PasswordHash = ""
	return &dto.LoginResponse{Message: "Login successful", Token: token, User: s}, nil
}

// lookupCustomer busca por teléfono y luego por email (cualquiera de los dos
// marca duplicado).
func (uc *UseCase) lookupCustomer(phone, email string) (*entity.Customer, error) {
	if c, err := uc.customerRepo.GetByPhoneOrEmail(phone); err != nil || c != nil {
		return c, err
	}
	if email == "" {
		return nil, nil
	}
	return uc.customerRepo.GetByPhoneOrEmail(email)
}

func (uc *UseCase) lookupStaff(phone, email string) (*entity.Staff, error) {
	if s, err := uc.staffRepo.GetByPhoneOrEmail(phone); err != nil || s != nil {
		return s, err
	}
	if email == "" {
		return nil, nil
	}
	return uc.staffRepo.GetByPhoneOrEmail(email)
}
