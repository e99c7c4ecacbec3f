package jsonstore

import (
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/internal/domain/repository"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo persiste clientes en customers.json.
type CustomerRepo struct {
	col *collection[entity.Customer]
}

// NewCustomerRepository construye el adaptador sobre dataDir/customers.json.
func NewCustomerRepository(dataDir string, log *logger.Logger) *CustomerRepo {
	return &CustomerRepo{col: newCollection[entity.Customer](dataDir, "customers.json", log)}
}

// List devuelve todos los clientes en orden de inserción.
func (r *CustomerRepo) List() ([]entity.Customer, error) {
	return r.col.load()
}

// SaveAll reescribe la colección completa.
func (r *CustomerRepo) SaveAll(customers []entity.Customer) error {
	return r.col.save(customers)
}
