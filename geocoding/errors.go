package geocoding

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors for geocoding providers.
var (
	// ErrNoSuchCoordinates is matched by every *NoSuchCoordinatesError.
	ErrNoSuchCoordinates = errors.New("no such coordinates")
	// ErrMalformedResult is returned when the provider returned a result that lacks
	// coordinates or carries an invalid country code.
	ErrMalformedResult = errors.New("malformed geocoding result")
)

// NoSuchCoordinatesError reports that the provider delivered no usable result:
// the request failed, the body was empty or unparseable, or it contained no results.
type NoSuchCoordinatesError struct {
	Operation       Operation // Operation is the lookup kind that failed.
	Query           string    // Query is the address, component filter or latlng that was looked up.
	Reason          string    // Reason describes why no coordinates are available.
	ProviderStatus  string    // ProviderStatus is the provider "status" field, if any.
	ProviderMessage string    // ProviderMessage is the provider "error_message" field, if any.
	Err             error     // Err is the underlying cause, if any.
}

func (e *NoSuchCoordinatesError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "no such coordinates for %s %q", e.Operation, e.Query)

	if e.Reason != "" {
		msg.WriteString(": " + e.Reason)
	}
	if e.ProviderStatus != "" {
		msg.WriteString(" (status " + e.ProviderStatus + ")")
	}
	if e.ProviderMessage != "" {
		msg.WriteString(": " + e.ProviderMessage)
	}
	if e.Err != nil {
		msg.WriteString(": " + e.Err.Error())
	}

	return msg.String()
}

func (e *NoSuchCoordinatesError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNoSuchCoordinates) succeed.
func (e *NoSuchCoordinatesError) Is(target error) bool {
	return target == ErrNoSuchCoordinates
}
