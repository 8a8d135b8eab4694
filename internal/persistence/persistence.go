package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/fps2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketLimiter = "limiter"

	keyEnabled = "enabled"
)

// Persistence stores runtime state that has to survive a restart.
// Limit values are never persisted.
type Persistence interface {
	Init() error

	// LoadEnabled returns the enabled state set at runtime,
	// os.ErrNotExist if it was never set
	LoadEnabled() (bool, error)
	SaveEnabled(enabled bool) error
	DeleteEnabled() error
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	return &persistence{
		dbPath: dbPath,
	}
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		return os.MkdirAll(parentDir, 0755)
	}
	return err
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	return bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 10 * time.Second})
}

func (p persistence) LoadEnabled() (bool, error) {
	db, err := p.openPersistence()
	if err != nil {
		return false, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var enabled bool
	corrupt := false
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketLimiter))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(keyEnabled))
		if v == nil {
			return os.ErrNotExist
		}

		if err := json.Unmarshal(v, &enabled); err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved enabled state: %v", err)
			if err := b.Delete([]byte(keyEnabled)); err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", keyEnabled, err)
			}
			corrupt = true
		}
		return nil
	})
	if err == nil && corrupt {
		err = os.ErrNotExist
	}

	return enabled, err
}

func (p persistence) SaveEnabled(enabled bool) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(enabled)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketLimiter))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		return b.Put([]byte(keyEnabled), data)
	})
}

func (p persistence) DeleteEnabled() error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketLimiter))
		if b == nil {
			// nothing stored yet
			return nil
		}
		return b.Delete([]byte(keyEnabled))
	})
}
