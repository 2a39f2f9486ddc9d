package api

import (
	"context"

	"github.com/roomatch/roomatch-cli/internal/client/models"
)

// Client is the remote matching-service API as seen by the views.
//
// Contract:
//   - Login / SignUp: authenticate and return a populated Session; the
//     implementation keeps the access token for subsequent calls.
//   - Search: forward a free-text query and return ranked results in server
//     order. An empty query is permitted and forwarded as-is.
//   - SetToken: adopt a previously issued token (session rehydration).
//
// All methods honor context cancellation. None of them retries.
type Client interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	SignUp(ctx context.Context, name, email, phone, password string) (models.Session, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	SetToken(token string)
}
