package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shenikar/urgences_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Collection - именованный упорядоченный список записей одного типа,
// сериализованный в JSON массив под одним ключом KV.
type Collection[T any] struct {
	kv     KV
	key    string
	logger *logrus.Logger
}

func NewCollection[T any](kv KV, key string, logger *logrus.Logger) *Collection[T] {
	return &Collection[T]{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// GetAll возвращает все записи коллекции. Отсутствующая, недоступная или
// поврежденная коллекция читается как пустая, ошибка только логируется.
func (c *Collection[T]) GetAll(ctx context.Context) []T {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		c.logger.WithError(err).WithField("collection", c.key).Warn("Failed to read collection, treating as empty")
		return []T{}
	}
	return c.decode(raw)
}

// SaveAll полностью заменяет коллекцию
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) error {
	payload, err := c.encode(records)
	if err != nil {
		return err
	}
	if err := c.kv.Set(ctx, c.key, payload); err != nil {
		return fmt.Errorf("collection %s: %w: %w", c.key, models.ErrStorage, err)
	}
	return nil
}

// Mutate атомарно применяет fn к текущему содержимому коллекции и сохраняет результат.
// Ошибка fn прерывает запись и возвращается как есть.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	err := c.kv.Update(ctx, c.key, func(current []byte) ([]byte, error) {
		next, err := fn(c.decode(current))
		if err != nil {
			return nil, err
		}
		return c.encode(next)
	})
	if err == nil || isDomainError(err) {
		return err
	}
	return fmt.Errorf("collection %s: %w: %w", c.key, models.ErrStorage, err)
}

func (c *Collection[T]) decode(raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.WithError(err).WithField("collection", c.key).Warn("Corrupt collection content, treating as empty")
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func (c *Collection[T]) encode(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w: %w", c.key, models.ErrStorage, err)
	}
	return payload, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrConflict) ||
		errors.Is(err, models.ErrForbidden) ||
		errors.Is(err, models.ErrStorage)
}
