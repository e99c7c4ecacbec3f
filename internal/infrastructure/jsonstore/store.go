// Package jsonstore implementa los puertos de persistencia sobre archivos
// JSON planos: una colección = un archivo con un único array. Cada mutación
// reescribe el archivo completo; el volumen de datos (una cementera de un
// solo local) no justifica nada más.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/cement-ledger/pkg/logger"
)

// collection archivo JSON con un array de registros homogéneos.
// El mutex serializa lecturas y escrituras del archivo dentro del proceso;
// no hay transacción que abarque varias colecciones (ver DESIGN.md).
type collection[T any] struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

func newCollection[T any](dir, file string, log *logger.Logger) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, file), log: log}
}

// load devuelve todos los registros en orden de inserción. Archivo inexistente
// o vacío → slice vacío. Documento corrupto → slice vacío y error registrado
// en el log (no se propaga al caller: la colección se trata como vacía).
func (c *collection[T]) load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("jsonstore: leer %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Error().Err(err).Str("file", c.path).
			Msg("documento JSON corrupto, se trata la colección como vacía")
		return []T{}, nil
	}
	return records, nil
}

// save reescribe la colección completa de forma atómica: escribe a un archivo
// temporal en el mismo directorio y lo renombra sobre el definitivo.
func (c *collection[T]) save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar %s: %w", c.path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsonstore: archivo temporal para %s: %w", c.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: escribir %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: cerrar %s: %w", c.path, err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: renombrar sobre %s: %w", c.path, err)
	}
	return nil
}

// EnsureDataDir crea el directorio de datos si no existe.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonstore: crear directorio de datos %s: %w", dir, err)
	}
	return nil
}
