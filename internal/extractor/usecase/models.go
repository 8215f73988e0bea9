package usecase

import (
	"github.com/spacerocks/neofeed/internal/extractor/models"
)

// ExtractConfig type is used to describe config for extraction run.
type ExtractConfig struct {
	Output     models.OutputConfig
	StartPage  int
	Pages      int
	PageSize   int
	OnProgress func(progress Progress)
}

// Progress type is used to represent progress of extraction in pages.
type Progress struct {
	Done  uint64
	Total uint64
}

// Result type is used to describe finished extraction.
type Result struct {
	RunID string
	Pages int
	Rows  int64
}
