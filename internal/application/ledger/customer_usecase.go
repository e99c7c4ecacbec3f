package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: alta, listado y detalle.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create da de alta un cliente con id secuencial CUSxxxxx.
// Los totales derivados arrancan en cero; pastBills es el saldo de apertura.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.CustomerName == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es requerido", domain.ErrInvalidInput)
	}
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	customer := entity.Customer{
		CustomerID:    NextCustomerID(customers),
		CustomerName:  in.CustomerName,
		Location:      in.Location,
		ContactNumber: in.ContactNumber,
		PastBills:     in.PastBills,
		CreatedAt:     time.Now().UTC(),
	}
	customers = append(customers, customer)
	if err := uc.customers.SaveAll(customers); err != nil {
		return nil, err
	}
	return toCustomerResponse(&customer), nil
}

// List devuelve todos los clientes; con search filtra por nombre, id o
// ubicación (sin distinguir mayúsculas).
func (uc *CustomerUseCase) List(search string) ([]*dto.CustomerResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		if search != "" && !matchesCustomer(c, search) {
			continue
		}
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID devuelve el detalle de un cliente.
func (uc *CustomerUseCase) GetByID(customerID string) (*dto.CustomerResponse, error) {
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].CustomerID == customerID {
			return toCustomerResponse(&customers[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func matchesCustomer(c *entity.Customer, search string) bool {
	return strings.Contains(strings.ToLower(c.CustomerName), search) ||
		strings.Contains(strings.ToLower(c.CustomerID), search) ||
		strings.Contains(strings.ToLower(c.Location), search)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		Location:      c.Location,
		ContactNumber: c.ContactNumber,
		PastBills:     c.PastBills,
		TotalBills:    c.TotalBills,
		TotalPayments: c.TotalPayments,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}
