package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/forms"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// ValidationErrorResponse carries one message per invalid field
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields forms.Errors `json:"fields"`
}

// GeolocationErrorResponse reports a device position failure with its code
type GeolocationErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HealthResponse reports the status of each storage dependency
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgInvalidRequest   = "Requisição inválida"
	msgInvalidData      = "Dados inválidos"
	msgStorageWrite     = "Não foi possível salvar os dados. Verifique o espaço disponível."
	msgStorageRead      = "Não foi possível ler os dados armazenados"
	msgCEPNotFound      = "CEP não encontrado"
	msgCEPInvalid       = "CEP deve ter 8 dígitos"
	msgCEPLookupFailed  = "Erro ao buscar CEP. Tente novamente."
	msgUnknownState     = "Estado não reconhecido"
	msgNotAuthenticated = "Usuário não autenticado"
	msgInternalError    = "Erro interno do servidor"
)

// detail returns the message the stores attach after a sentinel error,
// or fallback when there is none
func detail(err, sentinel error, fallback string) string {
	prefix := sentinel.Error() + ": "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return fallback
}

// respondError maps a domain error to its HTTP status and user-facing message
func respondError(c *gin.Context, span trace.Span, err error) {
	var (
		dupErr *models.DuplicateError
		geoErr *models.GeolocationError
	)

	switch {
	case errors.As(err, &dupErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: dupErr.Message, Field: dupErr.Field})
	case errors.As(err, &geoErr):
		c.JSON(http.StatusUnprocessableEntity, GeolocationErrorResponse{Error: geoErr.Message, Code: geoErr.Code})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: detail(err, models.ErrNotFound, "Registro não encontrado")})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: detail(err, models.ErrForbidden, "Acesso negado")})
	case errors.Is(err, models.ErrCEPNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgCEPNotFound, Field: string(forms.FieldCEP)})
	case errors.Is(err, models.ErrCEPInvalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgCEPInvalid, Field: string(forms.FieldCEP)})
	case errors.Is(err, models.ErrUnknownState):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgUnknownState, Field: string(forms.FieldState)})
	case errors.Is(err, models.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: detail(err, models.ErrInvalidCoordinates, "Coordenadas inválidas")})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
	case errors.Is(err, models.ErrLookupFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgCEPLookupFailed})
	case errors.Is(err, models.ErrStorageWrite):
		c.JSON(http.StatusInsufficientStorage, ErrorResponse{Error: msgStorageWrite})
	case errors.Is(err, models.ErrStorageRead):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: msgStorageRead})
	case errors.Is(err, models.ErrNoSession):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNotAuthenticated})
	default:
		observability.Logger().Error("unexpected handler error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}

	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"http.status_code": c.Writer.Status()})
	}
}

// respondValidation answers 400 with the per-field messages
func respondValidation(c *gin.Context, errs forms.Errors) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: msgInvalidData, Fields: errs})
}

// publicUsers strips password hashes and masks CPF and email before users
// are listed to unauthenticated callers
func publicUsers(users []models.User) []models.User {
	out := make([]models.User, 0, len(users))
	for _, user := range users {
		public := user.WithoutPassword()
		public.CPF = observability.MaskCPF(public.CPF)
		public.Email = observability.MaskEmail(public.Email)
		out = append(out, public)
	}
	return out
}

// sessionUser returns the authenticated session user, answering 401 when there is none
func sessionUser(c *gin.Context, session *services.Session) (*models.User, bool) {
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNotAuthenticated})
		return nil, false
	}
	user := session.User()
	if user == nil || !session.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNotAuthenticated})
		return nil, false
	}
	return user, true
}
