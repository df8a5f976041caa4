package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var bucketName = []byte("category_cache")

type boltEntry struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoltStore keeps the cache in a local bolt file.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	var entry *boltEntry
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw == nil {
			return nil
		}
		entry = &boltEntry{}
		return json.Unmarshal(raw, entry)
	})
	if err != nil {
		return "", false, errors.Wrap(err, "bolt get")
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Category, true, nil
}

func (b *BoltStore) Put(_ context.Context, key, description, category string) error {
	raw, err := json.Marshal(boltEntry{Description: description, Category: category, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	return errors.Wrap(err, "bolt put")
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
