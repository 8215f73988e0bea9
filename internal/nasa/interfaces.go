package nasa

import (
	"context"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API --output=mock --outpkg=mock
type API interface {
	// GetBaseURL should return base URL.
	GetBaseURL() string
	// Browse should return one page of near earth objects. Pages are numbered from 0.
	Browse(ctx context.Context, page, size int) (*BrowsePage, error)
}
