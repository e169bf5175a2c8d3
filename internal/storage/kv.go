package storage

import "context"

// KV - долговечное хранилище "ключ-значение", над которым строятся коллекции
type KV interface {
	// Get возвращает значение ключа или nil, nil если ключа нет
	Get(ctx context.Context, key string) ([]byte, error)
	// Set полностью заменяет значение ключа
	Set(ctx context.Context, key string, value []byte) error
	// SetNX записывает значение только если ключа еще нет
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	// Update атомарно выполняет чтение-изменение-запись. fn может быть вызвана
	// повторно при конфликте, current равен nil если ключа нет.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}

const (
	IncidentsCollection      = "incidents"
	AlertsCollection         = "alerts"
	GuidesCollection         = "guides"
	RegionalAdminsCollection = "regional_admins"
)

// DefaultKeyPrefix - префикс ключей коллекций по умолчанию
const DefaultKeyPrefix = "urgences_"

// Key собирает ключ коллекции
func Key(prefix, collection string) string {
	return prefix + collection
}
