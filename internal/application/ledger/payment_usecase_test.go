package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/application/ledger"
	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

type paymentFixture struct {
	customers *fakeCustomerRepo
	payments  *fakePaymentRepo
	uc        *ledger.PaymentUseCase
}

func newPaymentFixture(customers ...entity.Customer) *paymentFixture {
	f := &paymentFixture{
		customers: &fakeCustomerRepo{records: customers},
		payments:  &fakePaymentRepo{},
	}
	f.uc = ledger.NewPaymentUseCase(f.payments, f.customers, logger.Nop())
	return f
}

func paymentRequest(customerID, amount string) dto.PaymentRequest {
	return dto.PaymentRequest{
		CustomerID:   customerID,
		CustomerName: "Alice",
		Amount:       d(amount),
		Date:         "2024-03-05",
	}
}

func TestPaymentCreate_Validacion(t *testing.T) {
	f := newPaymentFixture()

	cases := []dto.PaymentRequest{
		{CustomerName: "Alice", Amount: d("10"), Date: "2024-03-05"}, // sin customerId
		{CustomerID: "CUS00001", Amount: d("10"), Date: "2024-03-05"},
		{CustomerID: "CUS00001", CustomerName: "Alice", Amount: d("0"), Date: "2024-03-05"},
		{CustomerID: "CUS00001", CustomerName: "Alice", Amount: d("-5"), Date: "2024-03-05"},
		{CustomerID: "CUS00001", CustomerName: "Alice", Amount: d("10")}, // sin fecha
	}
	for _, in := range cases {
		_, err := f.uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, f.payments.records, "ningún pago guardado")
}

func TestPaymentCreate_TotalPaymentsEsSumaDelHistorial(t *testing.T) {
	f := newPaymentFixture(entity.Customer{CustomerID: "CUS00001", CustomerName: "Alice"})

	_, err := f.uc.Create(paymentRequest("CUS00001", "20"))
	require.NoError(t, err)
	_, err = f.uc.Create(paymentRequest("CUS00001", "10.5"))
	require.NoError(t, err)

	assert.True(t, d("30.5").Equal(f.customers.byID("CUS00001").TotalPayments))
	assert.Len(t, f.payments.records, 2)
}

func TestPaymentCreate_NoTocaTotalBills(t *testing.T) {
	f := newPaymentFixture(entity.Customer{
		CustomerID:   "CUS00001",
		CustomerName: "Alice",
		TotalBills:   d("500"),
	})

	_, err := f.uc.Create(paymentRequest("CUS00001", "100"))
	require.NoError(t, err)

	c := f.customers.byID("CUS00001")
	assert.True(t, d("500").Equal(c.TotalBills), "los pagos no mueven totalBills")
	assert.True(t, d("100").Equal(c.TotalPayments))
}

func TestPaymentCreate_ClienteInexistenteSeOmiteEnSilencio(t *testing.T) {
	f := newPaymentFixture(entity.Customer{CustomerID: "CUS00001", CustomerName: "Alice"})

	_, err := f.uc.Create(paymentRequest("CUS00099", "25"))
	require.NoError(t, err)

	assert.Len(t, f.payments.records, 1, "pago guardado igualmente")
	assert.True(t, f.customers.byID("CUS00001").TotalPayments.IsZero())
}

func TestPaymentUpdate_NoEncontrado(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.uc.Update("no-existe", paymentRequest("CUS00001", "10"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentUpdate_RecalculaMonto(t *testing.T) {
	f := newPaymentFixture(entity.Customer{CustomerID: "CUS00001", CustomerName: "Alice"})

	created, err := f.uc.Create(paymentRequest("CUS00001", "20"))
	require.NoError(t, err)
	_, err = f.uc.Create(paymentRequest("CUS00001", "5"))
	require.NoError(t, err)

	_, err = f.uc.Update(created.ID, paymentRequest("CUS00001", "35"))
	require.NoError(t, err)

	assert.True(t, d("40").Equal(f.customers.byID("CUS00001").TotalPayments), "35 + 5")
}

// Mover el pago del cliente A al B deja ambos totalPayments re-derivados de
// sus historiales respectivos.
func TestPaymentUpdate_CambioDeCliente(t *testing.T) {
	f := newPaymentFixture(
		entity.Customer{CustomerID: "CUS00001", CustomerName: "Alice"},
		entity.Customer{CustomerID: "CUS00002", CustomerName: "Bob"},
	)

	created, err := f.uc.Create(paymentRequest("CUS00001", "20"))
	require.NoError(t, err)
	_, err = f.uc.Create(paymentRequest("CUS00001", "7"))
	require.NoError(t, err)

	in := paymentRequest("CUS00002", "20")
	in.CustomerName = "Bob"
	_, err = f.uc.Update(created.ID, in)
	require.NoError(t, err)

	assert.True(t, d("7").Equal(f.customers.byID("CUS00001").TotalPayments))
	assert.True(t, d("20").Equal(f.customers.byID("CUS00002").TotalPayments))
}

func TestPaymentUpdate_PreservaIdYCreatedAt(t *testing.T) {
	f := newPaymentFixture(entity.Customer{CustomerID: "CUS00001", CustomerName: "Alice"})

	created, err := f.uc.Create(paymentRequest("CUS00001", "20"))
	require.NoError(t, err)

	updated, err := f.uc.Update(created.ID, paymentRequest("CUS00001", "25"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Len(t, f.payments.records, 1, "actualización en sitio, no duplicado")
}
