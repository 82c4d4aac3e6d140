package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

// Geolocation failure messages shown to the user
const (
	msgGeoUnsupported = "Geolocalização não suportada neste navegador"
	msgGeoDenied      = "Permissão de localização negada. Verifique as configurações do navegador."
	msgGeoUnavailable = "Localização indisponível. Verifique sua conexão GPS."
	msgGeoTimeout     = "Tempo limite excedido. Tente novamente."
	msgGeoUnknown     = "Erro desconhecido ao obter localização."
	msgInvalidCoords  = "Coordenadas inválidas"
	mapsZoomLevel     = 15
)

// PositionOptions are handed to a PositionProvider on every request
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// PositionProvider is a source of device positions. Failures should be
// *models.GeolocationError carrying one of the standard codes.
type PositionProvider interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (models.Position, error)
}

// GeolocationService requests device positions and builds map links
type GeolocationService struct {
	provider    PositionProvider
	timeout     time.Duration
	maxAge      time.Duration
	mapsBaseURL string
}

// NewGeolocationService creates a GeolocationService. A nil provider
// means geolocation is unsupported.
func NewGeolocationService(provider PositionProvider, timeout, maxAge time.Duration, mapsBaseURL string) *GeolocationService {
	return &GeolocationService{
		provider:    provider,
		timeout:     timeout,
		maxAge:      maxAge,
		mapsBaseURL: strings.TrimRight(mapsBaseURL, "/"),
	}
}

// IsSupported reports whether a position provider is available
func (s *GeolocationService) IsSupported() bool {
	return s.provider != nil
}

// Options returns the options sent to the provider
func (s *GeolocationService) Options() PositionOptions {
	return PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            s.timeout,
		MaximumAge:         s.maxAge,
	}
}

// CurrentPosition requests a position fix. Every failure is returned as a
// *models.GeolocationError with a user-facing message.
func (s *GeolocationService) CurrentPosition(ctx context.Context) (models.Position, error) {
	if !s.IsSupported() {
		return models.Position{}, &models.GeolocationError{Code: models.GeolocationUnsupported, Message: msgGeoUnsupported}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	position, err := s.provider.CurrentPosition(ctx, s.Options())
	if err != nil {
		return models.Position{}, translateGeolocationError(err)
	}
	return position, nil
}

func translateGeolocationError(err error) *models.GeolocationError {
	code := -1
	var geoErr *models.GeolocationError
	switch {
	case errors.As(err, &geoErr):
		code = geoErr.Code
	case errors.Is(err, context.DeadlineExceeded):
		code = models.GeolocationTimeout
	}

	switch code {
	case models.GeolocationUnsupported:
		return &models.GeolocationError{Code: code, Message: msgGeoUnsupported}
	case models.GeolocationPermissionDenied:
		return &models.GeolocationError{Code: code, Message: msgGeoDenied}
	case models.GeolocationPositionUnavailable:
		return &models.GeolocationError{Code: code, Message: msgGeoUnavailable}
	case models.GeolocationTimeout:
		return &models.GeolocationError{Code: code, Message: msgGeoTimeout}
	default:
		if code < 0 {
			code = models.GeolocationPositionUnavailable
		}
		return &models.GeolocationError{Code: code, Message: msgGeoUnknown}
	}
}

// FormatCoordinates renders a position as form field strings with 6 decimals
func FormatCoordinates(position models.Position) (latitude, longitude string) {
	return utils.FormatCoordinate(position.Latitude), utils.FormatCoordinate(position.Longitude)
}

// BuildMapsURL builds an externally openable map link for the coordinates
func (s *GeolocationService) BuildMapsURL(latitude, longitude string) (string, error) {
	lat, errLat := utils.ParseCoordinate(latitude)
	lng, errLng := utils.ParseCoordinate(longitude)
	if errLat != nil || errLng != nil {
		return "", fmt.Errorf("%w: %s", models.ErrInvalidCoordinates, msgInvalidCoords)
	}

	return fmt.Sprintf("%s?q=%s,%s&z=%d",
		s.mapsBaseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
		mapsZoomLevel,
	), nil
}

// ValidateCoordinates checks a coordinate pair with the shared bounds rules
func (s *GeolocationService) ValidateCoordinates(latitude, longitude string) utils.CoordinateErrors {
	return utils.ValidateCoordinates(latitude, longitude)
}

// ReportedPosition is a position fix produced on the client device and
// submitted to the server, or the failure code the device reported
type ReportedPosition struct {
	Position  models.Position
	Timestamp time.Time
	ErrorCode *int
}

// ReportedPositionProvider serves a single client reported fix. Fixes
// older than the requested maximum age are treated as unavailable.
type ReportedPositionProvider struct {
	Report  ReportedPosition
	NowFunc func() time.Time
}

// CurrentPosition replays the reported fix, failing when it is stale or out of range
func (p ReportedPositionProvider) CurrentPosition(ctx context.Context, opts PositionOptions) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}
	if p.Report.ErrorCode != nil {
		return models.Position{}, &models.GeolocationError{Code: *p.Report.ErrorCode}
	}

	now := time.Now
	if p.NowFunc != nil {
		now = p.NowFunc
	}
	if !p.Report.Timestamp.IsZero() && opts.MaximumAge > 0 && now().Sub(p.Report.Timestamp) > opts.MaximumAge {
		return models.Position{}, &models.GeolocationError{Code: models.GeolocationPositionUnavailable}
	}

	lat := utils.FormatCoordinate(p.Report.Position.Latitude)
	lng := utils.FormatCoordinate(p.Report.Position.Longitude)
	if errs := utils.ValidateCoordinates(lat, lng); !errs.IsValid() {
		return models.Position{}, &models.GeolocationError{Code: models.GeolocationPositionUnavailable}
	}
	return p.Report.Position, nil
}
