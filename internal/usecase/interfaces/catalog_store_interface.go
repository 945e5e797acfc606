package interfaces

import (
	"context"

	"cardapio_digital/internal/domain/entities"
)

// ICatalogStore abstracts the remote blob holding the catalog document.
//
// Load returns an error for a missing, unreadable or malformed document; the
// caller decides the fallback. Save overwrites the document and returns its
// public URL.
type ICatalogStore interface {
	Load(ctx context.Context) (entities.AppData, error)
	Save(ctx context.Context, data entities.AppData) (string, error)
}

// ICircuitBreaker guards calls to a remote dependency.
type ICircuitBreaker interface {
	Execute(fn func() (interface{}, error)) (interface{}, error)
}
