package writer

import (
	"github.com/apache/arrow-go/v18/arrow"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Writer --output=mock --outpkg=mock

// Writer interface implementation should persist record batches to destination storage.
type Writer interface {
	// Write function should append record to destination storage. Nil record is a no-op
	// for sinks able to store data.
	Write(record arrow.Record) error
	// Close function should flush and release destination storage. Repeated calls should do nothing.
	Close() error
}
