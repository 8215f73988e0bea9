package general

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spacerocks/neofeed/internal/extractor/models"
	"github.com/spacerocks/neofeed/internal/extractor/output"
	"github.com/spacerocks/neofeed/internal/extractor/output/writer"
	writerMock "github.com/spacerocks/neofeed/internal/extractor/output/writer/mock"
	"github.com/spacerocks/neofeed/internal/extractor/usecase"
	"github.com/spacerocks/neofeed/internal/nasa"
	nasaMock "github.com/spacerocks/neofeed/internal/nasa/mock"
)

const testBaseURL = "https://api.nasa.gov"

func browsePage(number, totalPages int, objects []nasa.NearEarthObject) *nasa.BrowsePage {
	return &nasa.BrowsePage{
		Page: nasa.PageInfo{
			Size:       len(objects),
			TotalPages: totalPages,
			Number:     number,
		},
		NearEarthObjects: objects,
	}
}

// mockRegistry returns registry with the only "mock" sink creating w.
func mockRegistry(t *testing.T, w writer.Writer) *output.Registry {
	t.Helper()

	r := output.NewRegistry()
	require.NoError(t, r.Register("mock", func(_ context.Context, _ output.Params) (writer.Writer, error) {
		return w, nil
	}))

	return r
}

func TestExtractToDisk(t *testing.T) {
	objects := testObjects()

	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)
	api.On("Browse", mock.Anything, 0, 2).Return(browsePage(0, 10, objects[:1]), nil).Once()
	api.On("Browse", mock.Anything, 1, 2).Return(browsePage(1, 10, objects[1:]), nil).Once()

	fs := afero.NewMemMapFs()

	var progress []usecase.Progress

	uc := NewUseCase(UseCaseConfig{API: api, Fs: fs})

	result, err := uc.Extract(context.Background(), usecase.ExtractConfig{
		Output: models.OutputConfig{
			Type:     "disk",
			Dir:      "out",
			Filename: "neo.parquet",
		},
		Pages:    2,
		PageSize: 2,
		OnProgress: func(p usecase.Progress) {
			progress = append(progress, p)
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Pages)
	require.Equal(t, int64(2), result.Rows)
	require.NotEmpty(t, result.RunID)
	require.Equal(t, []usecase.Progress{{Done: 1, Total: 2}, {Done: 2, Total: 2}}, progress)

	f, err := fs.Open(filepath.Join("out", "neo.parquet"))
	require.NoError(t, err)

	parquetReader, err := file.NewParquetReader(f)
	require.NoError(t, err)

	defer parquetReader.Close()

	require.Equal(t, int64(2), parquetReader.NumRows())

	fileReader, err := pqarrow.NewFileReader(parquetReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	require.NoError(t, err)

	schema, err := fileReader.Schema()
	require.NoError(t, err)

	runID, ok := schema.Metadata().GetValue(MetadataRunID)
	require.True(t, ok)
	require.Equal(t, result.RunID, runID)
}

func TestExtractWritesPagesInOrder(t *testing.T) {
	objects := testObjects()

	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)
	api.On("Browse", mock.Anything, 5, 20).Return(browsePage(5, 10, objects[:1]), nil).Once()
	api.On("Browse", mock.Anything, 6, 20).Return(browsePage(6, 10, nil), nil).Once()
	api.On("Browse", mock.Anything, 7, 20).Return(browsePage(7, 10, objects[1:]), nil).Once()

	var writtenIDs []string

	w := writerMock.NewWriter(t)
	w.On("Write", mock.Anything).Return(func(record arrow.Record) error {
		if record == nil {
			writtenIDs = append(writtenIDs, "<nil>")

			return nil
		}

		//nolint:forcetypeassert
		writtenIDs = append(writtenIDs, record.Column(colID).(*array.String).Value(0))

		return nil
	}).Times(3)
	w.On("Close").Return(nil).Once()

	uc := NewUseCase(UseCaseConfig{API: api, Registry: mockRegistry(t, w)})

	result, err := uc.Extract(context.Background(), usecase.ExtractConfig{
		Output:    models.OutputConfig{Type: "mock"},
		StartPage: 5,
		Pages:     3,
		PageSize:  20,
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.Pages)
	require.Equal(t, int64(2), result.Rows)
	require.Equal(t, []string{"2000433", "<nil>", "2000719"}, writtenIDs)
}

func TestExtractStopsAtLastPage(t *testing.T) {
	objects := testObjects()

	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)
	api.On("Browse", mock.Anything, 0, 20).Return(browsePage(0, 2, objects[:1]), nil).Once()
	api.On("Browse", mock.Anything, 1, 20).Return(browsePage(1, 2, objects[1:]), nil).Once()

	w := writerMock.NewWriter(t)
	w.On("Write", mock.Anything).Return(nil).Twice()
	w.On("Close").Return(nil).Once()

	var last usecase.Progress

	uc := NewUseCase(UseCaseConfig{API: api, Registry: mockRegistry(t, w)})

	result, err := uc.Extract(context.Background(), usecase.ExtractConfig{
		Output:     models.OutputConfig{Type: "mock"},
		Pages:      10,
		PageSize:   20,
		OnProgress: func(p usecase.Progress) { last = p },
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Pages)
	require.Equal(t, usecase.Progress{Done: 2, Total: 2}, last)
}

func TestExtractClosesWriterOnFailure(t *testing.T) {
	errBrowse := errors.New("api is down")
	errWrite := errors.New("disk is full")

	type testCase struct {
		name        string
		mockFunc    func(api *nasaMock.API, w *writerMock.Writer)
		expectedErr error
	}

	testCases := []testCase{
		{
			name: "Fetch failure after first page",
			mockFunc: func(api *nasaMock.API, w *writerMock.Writer) {
				api.On("Browse", mock.Anything, 0, 20).Return(browsePage(0, 10, testObjects()), nil).Once()
				api.On("Browse", mock.Anything, 1, 20).Return(nil, errBrowse).Once()
				w.On("Write", mock.Anything).Return(nil).Once()
			},
			expectedErr: errBrowse,
		},
		{
			name: "Write failure",
			mockFunc: func(api *nasaMock.API, w *writerMock.Writer) {
				api.On("Browse", mock.Anything, 0, 20).Return(browsePage(0, 10, testObjects()), nil).Once()
				w.On("Write", mock.Anything).Return(errWrite).Once()
			},
			expectedErr: errWrite,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		api := nasaMock.NewAPI(t)
		api.On("GetBaseURL").Return(testBaseURL)

		w := writerMock.NewWriter(t)
		w.On("Close").Return(nil).Once()

		tc.mockFunc(api, w)

		uc := NewUseCase(UseCaseConfig{API: api, Registry: mockRegistry(t, w)})

		_, err := uc.Extract(context.Background(), usecase.ExtractConfig{
			Output:   models.OutputConfig{Type: "mock"},
			Pages:    3,
			PageSize: 20,
		})
		require.ErrorIs(t, err, tc.expectedErr)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestExtractCanceled(t *testing.T) {
	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)

	w := writerMock.NewWriter(t)
	w.On("Close").Return(nil).Once()

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errors.New("interrupted"))

	uc := NewUseCase(UseCaseConfig{API: api, Registry: mockRegistry(t, w)})

	_, err := uc.Extract(ctx, usecase.ExtractConfig{
		Output:   models.OutputConfig{Type: "mock"},
		Pages:    3,
		PageSize: 20,
	})
	require.ErrorContains(t, err, "interrupted")
}

func TestExtractUnknownSink(t *testing.T) {
	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)

	uc := NewUseCase(UseCaseConfig{API: api})

	require.Equal(t, []string{"disk", "s3"}, uc.Sinks())

	_, err := uc.Extract(context.Background(), usecase.ExtractConfig{
		Output: models.OutputConfig{Type: "bogus"},
		Pages:  1,
	})

	var unknownErr *output.UnknownSinkTypeError
	require.True(t, errors.As(err, &unknownErr))
	require.Equal(t, "bogus", unknownErr.Kind)
}

func TestExtractToS3NotImplemented(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))

	api := nasaMock.NewAPI(t)
	api.On("GetBaseURL").Return(testBaseURL)
	api.On("Browse", mock.Anything, 0, 20).Return(browsePage(0, 10, testObjects()), nil).Once()

	uc := NewUseCase(UseCaseConfig{API: api})

	_, err := uc.Extract(context.Background(), usecase.ExtractConfig{
		Output: models.OutputConfig{
			Type: "s3",
			S3: models.S3Config{
				Bucket:          "neo",
				Region:          "us-east-1",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
			},
		},
		Pages:    1,
		PageSize: 20,
	})
	require.ErrorIs(t, err, writer.ErrNotImplemented)
}
