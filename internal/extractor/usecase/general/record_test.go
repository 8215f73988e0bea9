package general

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/spacerocks/neofeed/internal/nasa"
)

func ptr[T any](x T) *T {
	return &x
}

func testObjects() []nasa.NearEarthObject {
	return []nasa.NearEarthObject{
		{
			ID:                 "2000433",
			NeoReferenceID:     "2000433",
			Name:               "433 Eros (A898 PA)",
			NameLimited:        "Eros",
			Designation:        "433",
			NASAJPLURL:         "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=2000433",
			AbsoluteMagnitudeH: ptr(10.41),
			EstimatedDiameter: map[string]nasa.DiameterRange{
				"meters": {Min: 22100.6, Max: 49417.8},
			},
			IsPotentiallyHazardousAsteroid: true,
			CloseApproachData: []nasa.CloseApproach{
				{
					CloseApproachDate:      "1900-12-27",
					EpochDateCloseApproach: -2177879400000,
					RelativeVelocity:       nasa.Velocity{KilometersPerHour: "20083.02"},
					MissDistance:           nasa.MissDistance{Kilometers: "47112732.93"},
				},
				{
					CloseApproachDate:      "1907-11-05",
					EpochDateCloseApproach: -1961187840000,
					RelativeVelocity:       nasa.Velocity{KilometersPerHour: "15000.5"},
					MissDistance:           nasa.MissDistance{Kilometers: "70533232.43"},
				},
			},
			OrbitalData: &nasa.OrbitalData{
				FirstObservationDate: "1893-10-29",
				LastObservationDate:  "2021-05-13",
				OrbitClass:           nasa.OrbitClass{OrbitClassType: "AMO"},
			},
		},
		{
			ID:             "2000719",
			NeoReferenceID: "2000719",
			Name:           "719 Albert (A911 TB)",
			IsSentryObject: true,
		},
	}
}

func TestNewSchema(t *testing.T) {
	schema := NewSchema("run-id", "https://api.nasa.gov")

	require.Equal(t, 18, schema.NumFields())
	require.Equal(t, "id", schema.Field(colID).Name)
	require.False(t, schema.Field(colID).Nullable)
	require.Equal(t, "orbit_class_type", schema.Field(colOrbitClassType).Name)
	require.Equal(t, arrow.FixedWidthTypes.Timestamp_ms, schema.Field(colClosestApproachDate).Type)

	runID, ok := schema.Metadata().GetValue(MetadataRunID)
	require.True(t, ok)
	require.Equal(t, "run-id", runID)

	source, ok := schema.Metadata().GetValue(MetadataSource)
	require.True(t, ok)
	require.Equal(t, "https://api.nasa.gov", source)
}

//nolint:forcetypeassert
func TestBuildRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	schema := NewSchema("run-id", "https://api.nasa.gov")

	record, err := BuildRecord(mem, schema, testObjects())
	require.NoError(t, err)

	defer record.Release()

	require.Equal(t, int64(2), record.NumRows())
	require.True(t, record.Schema().Equal(schema))

	ids := record.Column(colID).(*array.String)
	require.Equal(t, "2000433", ids.Value(0))
	require.Equal(t, "2000719", ids.Value(1))

	nameLimited := record.Column(colNameLimited).(*array.String)
	require.Equal(t, "Eros", nameLimited.Value(0))
	require.True(t, nameLimited.IsNull(1))

	magnitude := record.Column(colAbsoluteMagnitudeH).(*array.Float64)
	require.InDelta(t, 10.41, magnitude.Value(0), 1e-9)
	require.True(t, magnitude.IsNull(1))

	hazardous := record.Column(colIsPotentiallyHazardous).(*array.Boolean)
	require.True(t, hazardous.Value(0))
	require.False(t, hazardous.Value(1))

	sentry := record.Column(colIsSentryObject).(*array.Boolean)
	require.False(t, sentry.Value(0))
	require.True(t, sentry.Value(1))

	diameterMax := record.Column(colDiameterMaxMeters).(*array.Float64)
	require.InDelta(t, 49417.8, diameterMax.Value(0), 1e-9)
	require.True(t, diameterMax.IsNull(1))

	approaches := record.Column(colCloseApproachCount).(*array.Int64)
	require.Equal(t, int64(2), approaches.Value(0))
	require.Equal(t, int64(0), approaches.Value(1))

	missDistance := record.Column(colClosestMissDistanceKM).(*array.Float64)
	require.InDelta(t, 47112732.93, missDistance.Value(0), 1e-6)
	require.True(t, missDistance.IsNull(1))

	approachDate := record.Column(colClosestApproachDate).(*array.Timestamp)
	require.Equal(t, arrow.Timestamp(-2177879400000), approachDate.Value(0))
	require.True(t, approachDate.IsNull(1))

	velocity := record.Column(colClosestVelocityKPH).(*array.Float64)
	require.InDelta(t, 20083.02, velocity.Value(0), 1e-9)

	firstObservation := record.Column(colFirstObservationDate).(*array.Date32)
	require.True(t, time.Date(1893, time.October, 29, 0, 0, 0, 0, time.UTC).Equal(firstObservation.Value(0).ToTime()))
	require.True(t, firstObservation.IsNull(1))

	orbitClass := record.Column(colOrbitClassType).(*array.String)
	require.Equal(t, "AMO", orbitClass.Value(0))
	require.True(t, orbitClass.IsNull(1))
}

func TestBuildRecordEmptyPage(t *testing.T) {
	schema := NewSchema("run-id", "")

	record, err := BuildRecord(memory.DefaultAllocator, schema, nil)
	require.NoError(t, err)
	require.Nil(t, record)

	record, err = BuildRecord(memory.DefaultAllocator, schema, []nasa.NearEarthObject{})
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestBuildRecordErrors(t *testing.T) {
	type testCase struct {
		name    string
		objects []nasa.NearEarthObject
	}

	testCases := []testCase{
		{
			name: "Invalid miss distance",
			objects: []nasa.NearEarthObject{{
				ID: "1",
				CloseApproachData: []nasa.CloseApproach{
					{MissDistance: nasa.MissDistance{Kilometers: "far"}},
				},
			}},
		},
		{
			name: "Invalid observation date",
			objects: []nasa.NearEarthObject{{
				ID:          "1",
				OrbitalData: &nasa.OrbitalData{FirstObservationDate: "29.10.1893"},
			}},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
		defer mem.AssertSize(t, 0)

		record, err := BuildRecord(mem, NewSchema("run-id", ""), tc.objects)
		require.Error(t, err)
		require.Nil(t, record)
		require.Contains(t, err.Error(), `object "1"`)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
