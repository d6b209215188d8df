// Package memory provides in-process implementations of the repositories,
// used when the service runs without PostgreSQL and Redis and in tests.
package memory

import (
	"context"
)

// TxManager runs fn directly; memory repositories apply each write atomically.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do calls fn with ctx.
func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
