package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"tombs-core/internal/domain"
	"tombs-core/pkg/logger"
)

var savesBucket = []byte("saves")

// DefaultSlot - ключ единственного "быстрого" сохранения.
const DefaultSlot = "autosave"

// Store - файловое хранилище сохранений поверх bbolt.
// Снимки сериализуются msgpack и лежат в бакете "saves" по имени слота.
type Store struct {
	db *bolt.DB
}

// Open открывает (или создает) файл сохранений.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(savesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create saves bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save кладет снимок состояния в слот.
func (s *Store) Save(slot string, game *domain.Game, objects []*domain.Entity) error {
	snap := Snapshot{
		ID:      uuid.NewString(),
		SavedAt: time.Now(),
		Game:    game,
		Objects: objects,
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).Put([]byte(slot), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "storage",
		"slot":        slot,
		"snapshot_id": snap.ID,
		"bytes":       len(data),
	}).Info("Session saved")
	return nil
}

// Load читает снимок из слота. Пустой слот - ошибка "no save".
func (s *Store) Load(slot string) (*Snapshot, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(savesBucket).Get([]byte(slot))
		if raw == nil {
			return nil
		}
		// Копия: данные bbolt валидны только внутри транзакции
		data = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("no save in slot %q", slot)
	}

	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "storage",
		"slot":        slot,
		"snapshot_id": snap.ID,
		"saved_at":    snap.SavedAt,
	}).Info("Session loaded")
	return &snap, nil
}

// Delete стирает слот (после гибели героя сохранение не нужно).
func (s *Store) Delete(slot string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).Delete([]byte(slot))
	})
}
