package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
)

// CoordinateErrors holds per-axis validation messages. Empty means valid.
type CoordinateErrors struct {
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// IsValid reports whether both axes passed
func (e CoordinateErrors) IsValid() bool {
	return e.Latitude == "" && e.Longitude == ""
}

// ParseCoordinate parses a decimal degree string. NaN and infinities are rejected.
func ParseCoordinate(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", models.ErrInvalidCoordinates, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", models.ErrInvalidCoordinates, value)
	}
	return f, nil
}

// LatitudeError returns the user-facing message for an invalid latitude, or "" when valid
func LatitudeError(value string) string {
	return axisError(value, -90, 90, "Latitude é obrigatória", "Latitude deve ser um número válido", "Latitude deve estar entre -90 e 90")
}

// LongitudeError returns the user-facing message for an invalid longitude, or "" when valid
func LongitudeError(value string) string {
	return axisError(value, -180, 180, "Longitude é obrigatória", "Longitude deve ser um número válido", "Longitude deve estar entre -180 e 180")
}

func axisError(value string, min, max float64, required, notNumber, outOfRange string) string {
	if strings.TrimSpace(value) == "" {
		return required
	}
	f, err := ParseCoordinate(value)
	if err != nil {
		return notNumber
	}
	if f < min || f > max {
		return outOfRange
	}
	return ""
}

// ValidateCoordinates checks a latitude/longitude pair against the [-90,90] and [-180,180] bounds.
func ValidateCoordinates(latitude, longitude string) CoordinateErrors {
	return CoordinateErrors{
		Latitude:  LatitudeError(latitude),
		Longitude: LongitudeError(longitude),
	}
}

// ParseCoordinates parses and validates a pair into models.Coordinates
func ParseCoordinates(latitude, longitude string) (models.Coordinates, error) {
	if errs := ValidateCoordinates(latitude, longitude); !errs.IsValid() {
		return models.Coordinates{}, fmt.Errorf("%w: %s %s", models.ErrInvalidCoordinates, errs.Latitude, errs.Longitude)
	}
	lat, _ := ParseCoordinate(latitude)
	lng, _ := ParseCoordinate(longitude)
	return models.Coordinates{Latitude: lat, Longitude: lng}, nil
}

// FormatCoordinate renders a coordinate with 6 decimal places
func FormatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
