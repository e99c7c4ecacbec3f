package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
)

const customerIDPrefix = "CUS"

// NextCustomerID genera el siguiente identificador secuencial CUSxxxxx:
// recorre los ids existentes con prefijo CUS, toma el sufijo numérico máximo
// (0 si no hay ninguno) y suma 1. Correcto con un solo escritor; bajo
// escritores concurrentes puede colisionar (fuera de alcance).
func NextCustomerID(existing []entity.Customer) string {
	maxNumber := 0
	for _, c := range existing {
		if !strings.HasPrefix(c.CustomerID, customerIDPrefix) {
			continue
		}
		n, err := strconv.Atoi(c.CustomerID[len(customerIDPrefix):])
		if err == nil && n > maxNumber {
			maxNumber = n
		}
	}
	return fmt.Sprintf("%s%05d", customerIDPrefix, maxNumber+1)
}
