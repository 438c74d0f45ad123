package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names, one per independently persisted state domain
	bucketSession       = []byte("session")
	bucketCart          = []byte("cart")
	bucketLocalProducts = []byte("local_products")
)

// Storage represents BoltDB storage implementation for the client.
// Each state domain (session, cart, local products) lives in its own
// bucket as a single JSON document, loadable independently of the others.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSession, bucketCart, bucketLocalProducts} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// loadDocument читает JSON документ из bucket.
// Возвращает false если ключа нет или документ не разбирается: поврежденные
// данные заменяются значением по умолчанию на стороне вызывающего, а не
// превращаются в ошибку.
func (s *Storage) loadDocument(bucket, key []byte, dest any) (bool, error) {
	var found bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}

		data := b.Get(key)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, dest); err != nil {
			// Поврежденный документ равнозначен отсутствующему
			return nil
		}

		found = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// saveDocument сериализует значение в JSON и сохраняет его в bucket
func (s *Storage) saveDocument(bucket, key []byte, value any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}

		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		return nil
	})
}

// deleteDocument удаляет документ из bucket; отсутствие ключа не ошибка
func (s *Storage) deleteDocument(bucket, key []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}
		return b.Delete(key)
	})
}
