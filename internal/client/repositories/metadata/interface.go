// Package metadata implements the client's durable key/value storage.
// The session store keeps exactly two keys here: "token" (raw credential)
// and "auth" (serialized session record).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
