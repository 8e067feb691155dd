package geocoding

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/geocoder/metrics"
	"github.com/UnknownOlympus/geocoder/models"
)

// InstrumentedGeoCoder records request duration and outcome of every call to
// the wrapped GeoCoder.
type InstrumentedGeoCoder struct {
	inner        GeoCoder         // Wrapped provider
	providerName string           // Name of the provider for metrics labeling
	metrics      *metrics.Metrics // Metrics for tracking provider performance
	log          *slog.Logger     // Logger for failed lookups
}

// NewInstrumentedGeoCoder wraps inner with metrics labeled by providerName.
func NewInstrumentedGeoCoder(
	inner GeoCoder,
	providerName string,
	m *metrics.Metrics,
	log *slog.Logger,
) *InstrumentedGeoCoder {
	return &InstrumentedGeoCoder{inner: inner, providerName: providerName, metrics: m, log: log}
}

// FetchCoordinatesByAddress implements GeoCoder.
func (ig *InstrumentedGeoCoder) FetchCoordinatesByAddress(
	ctx context.Context,
	address string,
) (models.GeoCoordinates, error) {
	startTime := time.Now()
	coords, err := ig.inner.FetchCoordinatesByAddress(ctx, address)
	ig.observe(ctx, OperationAddress, startTime, err)

	return coords, err
}

// FetchCoordinatesByPostalCode implements GeoCoder.
func (ig *InstrumentedGeoCoder) FetchCoordinatesByPostalCode(
	ctx context.Context,
	postalCode, countryCode string,
) (models.GeoCoordinates, error) {
	startTime := time.Now()
	coords, err := ig.inner.FetchCoordinatesByPostalCode(ctx, postalCode, countryCode)
	ig.observe(ctx, OperationPostalCode, startTime, err)

	return coords, err
}

// EnrichGeoCoordinates implements GeoCoder.
func (ig *InstrumentedGeoCoder) EnrichGeoCoordinates(
	ctx context.Context,
	coords models.GeoCoordinates,
) (models.GeoCoordinates, error) {
	startTime := time.Now()
	enriched, err := ig.inner.EnrichGeoCoordinates(ctx, coords)
	ig.observe(ctx, OperationReverse, startTime, err)

	return enriched, err
}

func (ig *InstrumentedGeoCoder) observe(ctx context.Context, op Operation, startTime time.Time, err error) {
	duration := time.Since(startTime).Seconds()
	ig.metrics.RequestSeconds.WithLabelValues(ig.providerName, string(op)).Observe(duration)

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrNoSuchCoordinates):
		outcome = metrics.OutcomeNotFound
		ig.log.DebugContext(ctx, "No coordinates found", "operation", op, "error", err)
	default:
		outcome = metrics.OutcomeError
		ig.metrics.APIErrors.Inc()
		ig.log.ErrorContext(ctx, "Failed to geocode", "operation", op, "error", err)
	}

	ig.metrics.Requests.WithLabelValues(string(op), outcome).Inc()
}
