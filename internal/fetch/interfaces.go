//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/fetcher.go
package fetch

import (
	"context"

	"github.com/ytget/character-viewer/internal/model"
)

// Fetcher defines the interface for the character source.
type Fetcher interface {
	// FetchCharacters performs one request and returns the decoded results.
	// Errors are always of type *FetchFailure.
	FetchCharacters(ctx context.Context) ([]model.Character, error)
}
