package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CEPResponse is a resolved postal code plus its inferred region
type CEPResponse struct {
	Address models.CEPAddress `json:"address"`
	Region  models.Region     `json:"region"`
}

// MapsLinkResponse carries a map link for a coordinate pair
type MapsLinkResponse struct {
	URL string `json:"url"`
}

// CoordinateErrorResponse lists per-axis coordinate problems
type CoordinateErrorResponse struct {
	Error     string `json:"error"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// PositionReportRequest is a position fix taken on the client device, or
// the failure code the device reported instead
type PositionReportRequest struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
	ErrorCode *int      `json:"errorCode,omitempty"`
}

// PositionResponse is an accepted position fix formatted for the form
type PositionResponse struct {
	Position  models.Position `json:"position"`
	Latitude  string          `json:"latitude"`
	Longitude string          `json:"longitude"`
	MapsURL   string          `json:"mapsUrl"`
}

// LookupConfig holds the settings shared by the lookup endpoints
type LookupConfig struct {
	GeolocationTimeout time.Duration
	GeolocationMaxAge  time.Duration
	MapsBaseURL        string
}

// LookupHandlers handles postal code and geolocation lookups
type LookupHandlers struct {
	cep    *services.CEPService
	maps   *services.GeolocationService
	cfg    LookupConfig
	logger *logging.SafeLogger
}

// NewLookupHandlers creates a new lookup handlers instance
func NewLookupHandlers(cep *services.CEPService, cfg LookupConfig, logger *logging.SafeLogger) *LookupHandlers {
	return &LookupHandlers{
		cep:    cep,
		maps:   services.NewGeolocationService(nil, cfg.GeolocationTimeout, cfg.GeolocationMaxAge, cfg.MapsBaseURL),
		cfg:    cfg,
		logger: logger,
	}
}

// LookupCEP godoc
// @Summary Consultar CEP
// @Description Busca o endereço de um CEP no ViaCEP. Campos ausentes na resposta ficam vazios.
// @Tags lookup
// @Produce json
// @Param cep path string true "CEP, com ou sem máscara"
// @Success 200 {object} CEPResponse "Endereço encontrado"
// @Failure 400 {object} ErrorResponse "CEP inválido"
// @Failure 404 {object} ErrorResponse "CEP não encontrado"
// @Failure 502 {object} ErrorResponse "Falha ao consultar o CEP"
// @Router /cep/{cep} [get]
func (h *LookupHandlers) LookupCEP(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "LookupCEP")
	defer span.End()

	cep := c.Param("cep")
	span.SetAttributes(attribute.String("cep", utils.CleanCEP(cep)))

	address, err := h.cep.Lookup(ctx, cep)
	if err != nil {
		h.logger.Debug("CEP lookup failed", zap.String("cep", utils.CleanCEP(cep)), zap.Error(err))
		respondError(c, span, err)
		return
	}

	h.logger.Debug("LookupCEP completed",
		zap.String("cep", address.CEP),
		zap.Duration("total_duration", time.Since(startTime)))
	c.JSON(http.StatusOK, CEPResponse{
		Address: address,
		Region:  utils.DetectRegionByCEP(address.CEP),
	})
}

// GetMapsLink godoc
// @Summary Link para o mapa
// @Description Monta um link externo de mapa para as coordenadas informadas.
// @Tags lookup
// @Produce json
// @Param lat query string true "Latitude"
// @Param lng query string true "Longitude"
// @Success 200 {object} MapsLinkResponse "Link do mapa"
// @Failure 400 {object} CoordinateErrorResponse "Coordenadas inválidas"
// @Router /maps-link [get]
func (h *LookupHandlers) GetMapsLink(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "GetMapsLink")
	defer span.End()

	lat, lng := c.Query("lat"), c.Query("lng")

	if errs := h.maps.ValidateCoordinates(lat, lng); !errs.IsValid() {
		c.JSON(http.StatusBadRequest, CoordinateErrorResponse{
			Error:     "Coordenadas inválidas",
			Latitude:  errs.Latitude,
			Longitude: errs.Longitude,
		})
		return
	}

	url, err := h.maps.BuildMapsURL(lat, lng)
	if err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, MapsLinkResponse{URL: url})
}

// ReportPosition godoc
// @Summary Usar posição do dispositivo
// @Description Recebe a posição obtida no dispositivo (ou o código de erro informado por ele), aplica as regras de validade e devolve as coordenadas formatadas para o formulário.
// @Tags lookup
// @Accept json
// @Produce json
// @Param data body PositionReportRequest true "Posição do dispositivo"
// @Success 200 {object} PositionResponse "Posição aceita"
// @Failure 400 {object} ErrorResponse "Requisição inválida"
// @Failure 422 {object} GeolocationErrorResponse "Falha de geolocalização"
// @Router /geolocation/position [post]
func (h *LookupHandlers) ReportPosition(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ReportPosition")
	defer span.End()

	var req PositionReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	provider := services.ReportedPositionProvider{
		Report: services.ReportedPosition{
			Position: models.Position{
				Latitude:  req.Latitude,
				Longitude: req.Longitude,
				Accuracy:  req.Accuracy,
			},
			Timestamp: req.Timestamp,
			ErrorCode: req.ErrorCode,
		},
	}
	geo := services.NewGeolocationService(provider, h.cfg.GeolocationTimeout, h.cfg.GeolocationMaxAge, h.cfg.MapsBaseURL)

	position, err := geo.CurrentPosition(ctx)
	if err != nil {
		span.SetAttributes(attribute.Bool("position.accepted", false))
		respondError(c, span, err)
		return
	}

	lat, lng := services.FormatCoordinates(position)
	url, err := geo.BuildMapsURL(lat, lng)
	if err != nil {
		respondError(c, span, err)
		return
	}

	span.SetAttributes(attribute.Bool("position.accepted", true))
	c.JSON(http.StatusOK, PositionResponse{
		Position:  position,
		Latitude:  lat,
		Longitude: lng,
		MapsURL:   url,
	})
}
