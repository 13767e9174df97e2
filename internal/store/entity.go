package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Entity provides generic CRUD operations for one domain type. Each
// entity owns a key prefix and an optional set of unique secondary
// indexes which are maintained inside the same transaction as the
// primary record.
type Entity[T any] struct {
	store   *Store
	prefix  string
	indexes []Index[T]
}

// Index defines a unique secondary index on an entity. keyGen extracts
// the indexed values from a record; lookupTransform, when set, is
// applied to lookup values so searches match however keyGen normalized
// them.
type Index[T any] struct {
	name            string
	keyGen          func(*T) []string
	lookupTransform func(string) string
}

// NewEntity creates an Entity for type T under the given key prefix.
func NewEntity[T any](s *Store, prefix string) *Entity[T] {
	return &Entity[T]{
		store:   s,
		prefix:  prefix,
		indexes: make([]Index[T], 0),
	}
}

// WithIndex adds a unique secondary index to the entity.
func (e *Entity[T]) WithIndex(name string, keyGen func(*T) []string) *Entity[T] {
	e.indexes = append(e.indexes, Index[T]{
		name:   name,
		keyGen: keyGen,
	})
	return e
}

// WithIndexTransform adds a unique secondary index whose lookups are
// normalized by transform, e.g. lowercasing for case-insensitive email
// matching.
func (e *Entity[T]) WithIndexTransform(name string, keyGen func(*T) []string, transform func(string) string) *Entity[T] {
	e.indexes = append(e.indexes, Index[T]{
		name:            name,
		keyGen:          keyGen,
		lookupTransform: transform,
	})
	return e
}

func (e *Entity[T]) indexKey(name, value string) []byte {
	return []byte(e.prefix + "idx:" + name + ":" + value)
}

// Create stores a new entity under the given ID. It fails with
// ErrAlreadyExists if the ID or any indexed value is already taken.
func (e *Entity[T]) Create(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check existing key: %w", err)
		}

		// Unique index conflicts abort the whole transaction.
		for _, idx := range e.indexes {
			for _, value := range idx.keyGen(entity) {
				_, err := txn.Get(e.indexKey(idx.name, value))
				if err == nil {
					return &IndexConflictError{Index: idx.name, Value: value}
				}
				if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("failed to check index key: %w", err)
				}
			}
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("failed to set key: %w", err)
		}

		for _, idx := range e.indexes {
			for _, value := range idx.keyGen(entity) {
				if err := txn.Set(e.indexKey(idx.name, value), []byte(id)); err != nil {
					return fmt.Errorf("failed to set index key: %w", err)
				}
			}
		}

		return nil
	})
}

// Get retrieves an entity by ID. Returns ErrNotFound if it does not exist.
func (e *Entity[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := []byte(e.prefix + id)
	var entity T

	err := e.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get key: %w", err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &entity, nil
}

// GetByIndex retrieves an entity through a secondary index. The index's
// lookup transform, if any, is applied to value first.
func (e *Entity[T]) GetByIndex(ctx context.Context, indexName, value string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, idx := range e.indexes {
		if idx.name == indexName && idx.lookupTransform != nil {
			value = idx.lookupTransform(value)
			break
		}
	}

	var id string
	err := e.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(e.indexKey(indexName, value))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return e.Get(ctx, id)
}

// Update replaces an existing entity. Old index keys are removed and
// new ones written in the same transaction, so uniqueness checks never
// race with the primary write. Returns ErrNotFound if the entity does
// not exist and ErrAlreadyExists when a new indexed value is taken by
// another record.
func (e *Entity[T]) Update(ctx context.Context, id string, entity *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	return e.store.db.Update(func(txn *badger.Txn) error {
		var old T
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get existing key: %w", err)
		}

		err = item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &old); err != nil {
				return fmt.Errorf("failed to unmarshal old entity: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, idx := range e.indexes {
			for _, value := range idx.keyGen(&old) {
				if err := txn.Delete(e.indexKey(idx.name, value)); err != nil {
					return fmt.Errorf("failed to delete old index key: %w", err)
				}
			}
		}

		// Conflict check skips values the old record already held, so
		// an update that keeps its own slug never conflicts with itself.
		for _, idx := range e.indexes {
			oldValues := make(map[string]bool)
			for _, v := range idx.keyGen(&old) {
				oldValues[v] = true
			}

			for _, value := range idx.keyGen(entity) {
				if oldValues[value] {
					continue
				}
				_, err := txn.Get(e.indexKey(idx.name, value))
				if err == nil {
					return &IndexConflictError{Index: idx.name, Value: value}
				}
				if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("failed to check index key: %w", err)
				}
			}
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("failed to set key: %w", err)
		}

		for _, idx := range e.indexes {
			for _, value := range idx.keyGen(entity) {
				if err := txn.Set(e.indexKey(idx.name, value), []byte(id)); err != nil {
					return fmt.Errorf("failed to set index key: %w", err)
				}
			}
		}

		return nil
	})
}

// Delete removes an entity and its index keys. Deleting an ID that does
// not exist returns ErrNotFound.
func (e *Entity[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := []byte(e.prefix + id)

	return e.store.db.Update(func(txn *badger.Txn) error {
		var entity T
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get key: %w", err)
		}

		err = item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, idx := range e.indexes {
			for _, value := range idx.keyGen(&entity) {
				if err := txn.Delete(e.indexKey(idx.name, value)); err != nil {
					return fmt.Errorf("failed to delete index key: %w", err)
				}
			}
		}

		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}

		return nil
	})
}

// List returns an iterator over all entities under this prefix.
// Iteration order is the key order, which for nanoid IDs is effectively
// arbitrary; callers sort in memory when order matters.
func (e *Entity[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		e.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(e.prefix)
			opts.PrefetchValues = true

			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return err
				}

				// Index keys live under the same prefix; skip them.
				key := string(it.Item().Key())
				if strings.HasPrefix(key[len(e.prefix):], "idx:") {
					continue
				}

				var entity T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &entity)
				})
				if err != nil {
					yield(nil, err)
					return err
				}

				if !yield(&entity, nil) {
					return nil
				}
			}

			return nil
		})
	}
}

// All collects every entity into a slice, in key order.
func (e *Entity[T]) All(ctx context.Context) ([]*T, error) {
	var out []*T
	for entity, err := range e.List(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

// Count returns the number of stored entities. Values are not fetched.
func (e *Entity[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := e.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(e.prefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(e.prefix)); it.ValidForPrefix([]byte(e.prefix)); it.Next() {
			key := string(it.Item().Key())
			if strings.HasPrefix(key[len(e.prefix):], "idx:") {
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
