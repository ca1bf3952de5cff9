// Package kvstore implementa los repositorios sobre un almacén
// clave-valor embebido (bbolt). Cada colección lógica vive como un
// arreglo JSON bajo una clave propia dentro de un único bucket.
package kvstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("collections")

// Store cliente del archivo bbolt compartido por todos los repositorios.
// Es una dependencia de vida larga: se abre en main y se inyecta.
type Store struct {
	db *bolt.DB
}

// Open abre (o crea) el archivo de datos y garantiza el bucket.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// view lee el valor crudo de una clave; nil si no existe.
func (s *Store) view(key string, fn func(raw []byte)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		fn(tx.Bucket(bucketName).Get([]byte(key)))
		return nil
	})
}

// update ejecuta una lectura-modificación-escritura de la clave dentro
// de una sola transacción bbolt.
func (s *Store) update(key string, fn func(raw []byte) ([]byte, error)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		out, err := fn(b.Get([]byte(key)))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), out)
	})
}
