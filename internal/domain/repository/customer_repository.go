package repository

import "github.com/tu-usuario/cement-ledger/internal/domain/entity"

// CustomerRepository puerto de persistencia para la colección de clientes.
// El ciclo es siempre carga completa → mutación en memoria → reescritura
// completa; no hay acceso por registro.
type CustomerRepository interface {
	List() ([]entity.Customer, error)
	SaveAll(customers []entity.Customer) error
}
