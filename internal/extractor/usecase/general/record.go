package general

import (
	"math"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"

	"github.com/spacerocks/neofeed/internal/nasa"
)

const (
	MetadataRunID  = "neofeed.run_id"
	MetadataSource = "neofeed.source"

	diameterUnit = "meters"
	dateLayout   = "2006-01-02"
)

// column indexes in the record schema
const (
	colID = iota
	colNeoReferenceID
	colName
	colNameLimited
	colDesignation
	colNASAJPLURL
	colAbsoluteMagnitudeH
	colIsPotentiallyHazardous
	colIsSentryObject
	colDiameterMinMeters
	colDiameterMaxMeters
	colCloseApproachCount
	colClosestMissDistanceKM
	colClosestApproachDate
	colClosestVelocityKPH
	colFirstObservationDate
	colLastObservationDate
	colOrbitClassType
)

// NewSchema returns schema of near earth object records with run metadata attached.
func NewSchema(runID, source string) *arrow.Schema {
	fields := []arrow.Field{
		colID:                     {Name: "id", Type: arrow.BinaryTypes.String},
		colNeoReferenceID:         {Name: "neo_reference_id", Type: arrow.BinaryTypes.String},
		colName:                   {Name: "name", Type: arrow.BinaryTypes.String},
		colNameLimited:            {Name: "name_limited", Type: arrow.BinaryTypes.String, Nullable: true},
		colDesignation:            {Name: "designation", Type: arrow.BinaryTypes.String, Nullable: true},
		colNASAJPLURL:             {Name: "nasa_jpl_url", Type: arrow.BinaryTypes.String, Nullable: true},
		colAbsoluteMagnitudeH:     {Name: "absolute_magnitude_h", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		colIsPotentiallyHazardous: {Name: "is_potentially_hazardous_asteroid", Type: arrow.FixedWidthTypes.Boolean},
		colIsSentryObject:         {Name: "is_sentry_object", Type: arrow.FixedWidthTypes.Boolean},
		colDiameterMinMeters:      {Name: "estimated_diameter_min_meters", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		colDiameterMaxMeters:      {Name: "estimated_diameter_max_meters", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		colCloseApproachCount:     {Name: "close_approach_count", Type: arrow.PrimitiveTypes.Int64},
		colClosestMissDistanceKM:  {Name: "closest_approach_miss_distance_km", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		colClosestApproachDate:    {Name: "closest_approach_date", Type: arrow.FixedWidthTypes.Timestamp_ms, Nullable: true},
		colClosestVelocityKPH:     {Name: "closest_approach_velocity_kph", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		colFirstObservationDate:   {Name: "first_observation_date", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
		colLastObservationDate:    {Name: "last_observation_date", Type: arrow.FixedWidthTypes.Date32, Nullable: true},
		colOrbitClassType:         {Name: "orbit_class_type", Type: arrow.BinaryTypes.String, Nullable: true},
	}

	metadata := arrow.NewMetadata(
		[]string{MetadataRunID, MetadataSource},
		[]string{runID, source},
	)

	return arrow.NewSchema(fields, &metadata)
}

// BuildRecord converts objects of one page to a record. Returns nil record for an empty page.
func BuildRecord(mem memory.Allocator, schema *arrow.Schema, objects []nasa.NearEarthObject) (arrow.Record, error) {
	if len(objects) == 0 {
		return nil, nil //nolint:nilnil
	}

	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	rb.Reserve(len(objects))

	for i := range objects {
		if err := appendObject(rb, &objects[i]); err != nil {
			return nil, errors.WithMessagef(err, "failed to build record for object %q", objects[i].ID)
		}
	}

	return rb.NewRecord(), nil
}

// closestApproach is the approach with the smallest miss distance.
type closestApproach struct {
	missDistanceKM float64
	epochMillis    int64
	velocityKPH    *float64
}

//nolint:forcetypeassert
func appendObject(rb *array.RecordBuilder, obj *nasa.NearEarthObject) error {
	rb.Field(colID).(*array.StringBuilder).Append(obj.ID)
	rb.Field(colNeoReferenceID).(*array.StringBuilder).Append(obj.NeoReferenceID)
	rb.Field(colName).(*array.StringBuilder).Append(obj.Name)
	appendOptionalString(rb.Field(colNameLimited).(*array.StringBuilder), obj.NameLimited)
	appendOptionalString(rb.Field(colDesignation).(*array.StringBuilder), obj.Designation)
	appendOptionalString(rb.Field(colNASAJPLURL).(*array.StringBuilder), obj.NASAJPLURL)
	appendOptionalFloat(rb.Field(colAbsoluteMagnitudeH).(*array.Float64Builder), obj.AbsoluteMagnitudeH)
	rb.Field(colIsPotentiallyHazardous).(*array.BooleanBuilder).Append(obj.IsPotentiallyHazardousAsteroid)
	rb.Field(colIsSentryObject).(*array.BooleanBuilder).Append(obj.IsSentryObject)

	if diameter, ok := obj.EstimatedDiameter[diameterUnit]; ok {
		rb.Field(colDiameterMinMeters).(*array.Float64Builder).Append(diameter.Min)
		rb.Field(colDiameterMaxMeters).(*array.Float64Builder).Append(diameter.Max)
	} else {
		rb.Field(colDiameterMinMeters).AppendNull()
		rb.Field(colDiameterMaxMeters).AppendNull()
	}

	rb.Field(colCloseApproachCount).(*array.Int64Builder).Append(int64(len(obj.CloseApproachData)))

	closest, err := findClosestApproach(obj.CloseApproachData)
	if err != nil {
		return err
	}

	if closest != nil {
		rb.Field(colClosestMissDistanceKM).(*array.Float64Builder).Append(closest.missDistanceKM)
		rb.Field(colClosestApproachDate).(*array.TimestampBuilder).Append(arrow.Timestamp(closest.epochMillis))
		appendOptionalFloat(rb.Field(colClosestVelocityKPH).(*array.Float64Builder), closest.velocityKPH)
	} else {
		rb.Field(colClosestMissDistanceKM).AppendNull()
		rb.Field(colClosestApproachDate).AppendNull()
		rb.Field(colClosestVelocityKPH).AppendNull()
	}

	var firstObservation, lastObservation, orbitClassType string

	if obj.OrbitalData != nil {
		firstObservation = obj.OrbitalData.FirstObservationDate
		lastObservation = obj.OrbitalData.LastObservationDate
		orbitClassType = obj.OrbitalData.OrbitClass.OrbitClassType
	}

	if err = appendOptionalDate(rb.Field(colFirstObservationDate).(*array.Date32Builder), firstObservation); err != nil {
		return errors.WithMessage(err, "first observation date")
	}

	if err = appendOptionalDate(rb.Field(colLastObservationDate).(*array.Date32Builder), lastObservation); err != nil {
		return errors.WithMessage(err, "last observation date")
	}

	appendOptionalString(rb.Field(colOrbitClassType).(*array.StringBuilder), orbitClassType)

	return nil
}

func findClosestApproach(approaches []nasa.CloseApproach) (*closestApproach, error) {
	var closest *closestApproach

	for _, approach := range approaches {
		distance, err := parseOptionalFloat(approach.MissDistance.Kilometers)
		if err != nil {
			return nil, errors.WithMessagef(err, "miss distance of approach at %s", approach.CloseApproachDate)
		}

		if distance == nil {
			continue
		}

		if closest != nil && closest.missDistanceKM <= *distance {
			continue
		}

		velocity, err := parseOptionalFloat(approach.RelativeVelocity.KilometersPerHour)
		if err != nil {
			return nil, errors.WithMessagef(err, "velocity of approach at %s", approach.CloseApproachDate)
		}

		closest = &closestApproach{
			missDistanceKM: *distance,
			epochMillis:    approach.EpochDateCloseApproach,
			velocityKPH:    velocity,
		}
	}

	return closest, nil
}

func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	if math.IsNaN(f) {
		return nil, nil //nolint:nilnil
	}

	return &f, nil
}

func appendOptionalString(b *array.StringBuilder, value string) {
	if value == "" {
		b.AppendNull()

		return
	}

	b.Append(value)
}

func appendOptionalFloat(b *array.Float64Builder, value *float64) {
	if value == nil {
		b.AppendNull()

		return
	}

	b.Append(*value)
}

func appendOptionalDate(b *array.Date32Builder, value string) error {
	if value == "" {
		b.AppendNull()

		return nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return errors.New(err.Error())
	}

	b.Append(arrow.Date32FromTime(t))

	return nil
}
