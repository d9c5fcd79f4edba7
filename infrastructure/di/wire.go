//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
)

// InitializeContainer builds the full application graph.
func InitializeContainer(ctx context.Context) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
