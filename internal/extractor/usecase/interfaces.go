package usecase

import (
	"context"
)

// UseCase interface implementation should fetch near earth objects and persist them through a sink.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UseCase --output=mock --outpkg=mock
type UseCase interface {
	// Extract should fetch configured pages, convert each of them to a record batch
	// and write batches in page order. The sink should be closed before return.
	Extract(ctx context.Context, config ExtractConfig) (*Result, error)
	// Sinks should return registered sink types.
	Sinks() []string
}
