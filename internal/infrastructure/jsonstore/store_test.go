package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cement-ledger/internal/domain/entity"
	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

func TestCollection_ArchivoInexistenteEsColeccionVacia(t *testing.T) {
	col := newCollection[entity.Customer](t.TempDir(), "customers.json", logger.Nop())

	records, err := col.load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_GuardaYCargaPreservandoOrden(t *testing.T) {
	dir := t.TempDir()
	col := newCollection[entity.Customer](dir, "customers.json", logger.Nop())

	in := []entity.Customer{
		{CustomerID: "CUS00001", CustomerName: "Alice", PastBills: decimal.RequireFromString("1200")},
		{CustomerID: "CUS00002", CustomerName: "Bob"},
	}
	require.NoError(t, col.save(in))

	out, err := col.load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "CUS00001", out[0].CustomerID, "orden de inserción preservado")
	assert.Equal(t, "CUS00002", out[1].CustomerID)
	assert.True(t, decimal.RequireFromString("1200").Equal(out[0].PastBills))
}

func TestCollection_DocumentoCorruptoSeTrataComoVacio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bills.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	col := newCollection[entity.Bill](dir, "bills.json", logger.Nop())
	records, err := col.load()

	require.NoError(t, err, "el documento corrupto no es un error para el caller")
	assert.Empty(t, records)
}

func TestCollection_ArchivoVacioEsColeccionVacia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payments.json"), nil, 0o644))

	col := newCollection[entity.Payment](dir, "payments.json", logger.Nop())
	records, err := col.load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

// Cada save reescribe el archivo completo: la segunda escritura reemplaza a
// la primera y no deja temporales residuales.
func TestCollection_SaveReemplazaElContenido(t *testing.T) {
	dir := t.TempDir()
	col := newCollection[entity.StockLot](dir, "stocks.json", logger.Nop())

	require.NoError(t, col.save([]entity.StockLot{{StockID: "LOT1"}, {StockID: "LOT2"}}))
	require.NoError(t, col.save([]entity.StockLot{{StockID: "LOT3"}}))

	out, err := col.load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "LOT3", out[0].StockID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "sin archivos temporales residuales")
}

func TestRepositorios_RoundTripSobreDisco(t *testing.T) {
	dir := t.TempDir()
	log := logger.Nop()

	customers := NewCustomerRepository(dir, log)
	require.NoError(t, customers.SaveAll([]entity.Customer{{CustomerID: "CUS00001"}}))

	bills := NewBillRepository(dir, log)
	require.NoError(t, bills.SaveAll([]entity.Bill{{ID: "b-1", CustomerID: "CUS00001"}}))

	gotCustomers, err := customers.List()
	require.NoError(t, err)
	assert.Len(t, gotCustomers, 1)

	gotBills, err := bills.List()
	require.NoError(t, err)
	require.Len(t, gotBills, 1)
	assert.Equal(t, "b-1", gotBills[0].ID)

	// cada colección vive en su propio archivo
	assert.FileExists(t, filepath.Join(dir, "customers.json"))
	assert.FileExists(t, filepath.Join(dir, "bills.json"))
}

func TestEnsureDataDir_CreaDirectoriosAnidados(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "ledger")

	require.NoError(t, EnsureDataDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
