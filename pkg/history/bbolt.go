package history

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore implements Store using bbolt
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) a bbolt database at dbPath
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Save stores a run keyed by its id
func (b *BoltStore) Save(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put(run.ID[:], data)
	})
}

// Get retrieves a run by id
func (b *BoltStore) Get(id uuid.UUID) (Run, error) {
	var run Run
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get(id[:])
		if v == nil {
			return ErrRunNotFound
		}
		// v is only valid during the transaction; Unmarshal copies what it needs
		return json.Unmarshal(v, &run)
	})
	return run, err
}

// List returns all runs, newest first
func (b *BoltStore) List() ([]Run, error) {
	var runs []Run
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("failed to decode run %x: %w", k, err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(runs)
	return runs, nil
}

// Close closes the database
func (b *BoltStore) Close() error {
	return b.db.Close()
}
