package storage

import (
	"time"

	"tombs-core/internal/domain"
)

// Snapshot - полное состояние сессии на момент сохранения.
// Идентичность сущностей позиционная, поэтому порядок Objects
// обязан пережить сериализацию без перестановок.
type Snapshot struct {
	ID      string    `msgpack:"id"`
	SavedAt time.Time `msgpack:"savedAt"`

	Game    *domain.Game     `msgpack:"game"`
	Objects []*domain.Entity `msgpack:"objects"`
}
